package output

import "context"

// LLMPort is a text-generation endpoint: one prompt in, one completion out.
type LLMPort interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
