package llm

import "context"

// MockClient implements Client for testing. Each call pops the next scripted
// result; when the script runs out the last entry repeats.
type MockClient struct {
	Responses []MockResult
	Calls     int
	// LastRequest records the most recent request for assertions.
	LastRequest Request
}

// MockResult is one scripted completion outcome.
type MockResult struct {
	Content string
	Err     error
}

// Complete returns the next scripted result.
func (m *MockClient) Complete(ctx context.Context, req Request) (*Response, error) {
	m.Calls++
	m.LastRequest = req

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(m.Responses) == 0 {
		return &Response{Content: ""}, nil
	}
	idx := m.Calls - 1
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	result := m.Responses[idx]
	if result.Err != nil {
		return nil, result.Err
	}
	return &Response{Content: result.Content}, nil
}

// Model identifies the mock.
func (m *MockClient) Model() string { return "mock" }
