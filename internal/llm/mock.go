package llm

import "context"

// MockClient permite tests sin llamar a un LLM real. Registra las llamadas para
// verificar qué prompt viajó (y que el camino de rechazo nunca llama).
type MockClient struct {
	Response string
	Err      error

	Calls            int
	LastSystemPrompt string
	LastUserMessage  string
}

func (m *MockClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	m.Calls++
	m.LastSystemPrompt = systemPrompt
	m.LastUserMessage = userMessage
	return m.Response, m.Err
}
