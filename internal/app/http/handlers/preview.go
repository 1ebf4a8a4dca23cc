package handlers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"eco-urh/go_backend/internal/domain/quote"
)

// QuotePreview renders the live edit buffer as the HTML print view. It uses
// the same snapshot the PDF generator consumes, so both artifacts always
// show the same sections, items, total and date.
func (h *Handlers) QuotePreview(w http.ResponseWriter, r *http.Request) {
	var req saveQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	s := req.composer().Snapshot()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := previewTmpl.Execute(w, s); err != nil {
		log.Printf("quote preview: %v", err)
	}
}

var previewTmpl = template.Must(template.New("preview").Funcs(template.FuncMap{
	"soles": quote.FormatPEN,
}).Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Cotización</title>
</head>
<body>
<div id="print-area">
  <header style="border-bottom:2px solid #111">
    <h1>ECO SISTEMAS URH SAC</h1>
    <p>Mza It9 A.V Nueva Gales - Cieneguilla</p>
    <p>Cel: 998270102 - 985832096</p>
    <p>Email: ecosistemas_urh_sac@hotmail.com</p>
    <p><strong>LIMA, {{.Date}}</strong></p>
  </header>

  <section class="clients">
    <p>CLIENTE(S):</p>
    {{range .Clients}}
    <div>
      <h2>{{.Name}}</h2>
      <span>{{.Phone}}</span> <span>{{.Email}}</span>
    </div>
    {{end}}
  </section>

  <table width="100%">
    <thead>
      <tr><th align="left">DESCRIPCIÓN</th><th align="right">PRECIO</th></tr>
    </thead>
    <tbody>
      {{range .Sections}}
      <tr class="category"><td colspan="2">{{if .Title}}{{.Title}}{{else}}(Sin Categoría){{end}}</td></tr>
      {{range .Items}}
      <tr><td>{{.Description}}</td><td align="right">{{soles .Price}}</td></tr>
      {{end}}
      {{end}}
    </tbody>
  </table>

  <p class="total" align="right"><strong>TOTAL: {{soles .Total}}</strong></p>

  <footer style="border-top:1px solid #ccc">
    <p><strong>Términos y Condiciones:</strong></p>
    <ul>
      <li>Validez de la oferta: 15 días calendario.</li>
      <li>Garantía: 1 año por defectos de fabricación.</li>
      <li>Forma de pago: 50% adelanto, 50% al finalizar.</li>
    </ul>
  </footer>
</div>
</body>
</html>
`))
