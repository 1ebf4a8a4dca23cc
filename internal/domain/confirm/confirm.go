// Package confirm models the yes/no prompt that guards destructive
// operations. The transport decides how the question is actually answered.
package confirm

type Confirmer interface {
	Confirm(message string) bool
}

// Func adapts a plain function to Confirmer.
type Func func(message string) bool

func (f Func) Confirm(message string) bool { return f(message) }

// Allow approves every request, Deny rejects every request.
var (
	Allow = Func(func(string) bool { return true })
	Deny  = Func(func(string) bool { return false })
)
