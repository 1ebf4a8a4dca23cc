package pdf

import "eco-urh/go_backend/internal/domain/quote"

type Generator interface {
	Generate(s quote.Snapshot) ([]byte, error)
}
