package client

// Client is a roster entry. Quotes embed clients by value, so editing the
// roster never rewrites saved quotes.
type Client struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}
