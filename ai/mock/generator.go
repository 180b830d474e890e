package mock

import "context"

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, the prompt is echoed back, which lets tests assert on the
	// assembled context without a model in the loop.
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	callCount  int
	lastPrompt string
}

// NewMockGenerator creates a mock generator with default echo behavior.
// Note: Returns concrete type to allow test assertions via GetMockGenerator().
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate echoes the prompt or delegates to GenerateFunc.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.callCount++
	m.lastPrompt = prompt

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}

	return prompt, nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// LastPrompt returns the most recent prompt passed to Generate.
func (m *MockGenerator) LastPrompt() string {
	return m.lastPrompt
}

// Reset clears the call counter and recorded prompt.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.lastPrompt = ""
}
