package llm

import "context"

// Model is a single-turn text completion backend. Implementations are
// configured with temperature zero so the same prompt yields the same
// output, which the chain tests rely on.
type Model interface {
	Generate(ctx context.Context, prompt string) (reply string, err error)
}
