package langchain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	prompt string
	text   string
	err    error
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range messages {
		for _, part := range m.Parts {
			if tp, ok := part.(llms.TextContent); ok {
				f.prompt = tp.Text
			}
		}
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.text}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestLangChainAdapter_Generate(t *testing.T) {
	model := &fakeModel{text: `{"ferramenta":"data_hora"}`}
	a := NewFromModel(model, 0)

	text, err := a.Generate(context.Background(), "qual a hora?")
	require.NoError(t, err)

	assert.Equal(t, `{"ferramenta":"data_hora"}`, text)
	assert.Equal(t, "qual a hora?", model.prompt)
}

func TestLangChainAdapter_Error(t *testing.T) {
	a := NewFromModel(&fakeModel{err: errors.New("connection refused")}, 0)

	_, err := a.Generate(context.Background(), "p")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewLangChainAdapter_RequiresModel(t *testing.T) {
	_, err := NewLangChainAdapter(Config{})

	assert.Error(t, err)
}
