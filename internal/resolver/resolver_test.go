package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"amy/internal/command"
	"amy/internal/intent"
	"amy/internal/layout"
	"amy/internal/llm"
	"amy/internal/logging"
	"amy/internal/registry"
	"amy/internal/session"
)

func newTestResolver(client llm.Client, opts ...Option) *Resolver {
	reg := registry.New()
	opts = append(opts, WithLogger(logging.Nop()))
	return New(client, intent.New(reg), reg, opts...)
}

func TestResolveBackendSuccess(t *testing.T) {
	mock := &llm.MockClient{Responses: []llm.MockResult{
		{Content: `{"message":"Chart is now full width!","uiChanges":[{"component":"chart","action":"resize","value":"full"}]}`},
	}}
	r := newTestResolver(mock)

	reply, raws := r.Resolve(context.Background(), "make the chart full width", nil, nil, nil)
	require.Equal(t, "Chart is now full width!", reply)
	require.Len(t, raws, 1)
	require.Equal(t, "chart", raws[0].Component)
	require.True(t, mock.LastRequest.JSONMode)
}

func TestResolveFallsBackToMatcher(t *testing.T) {
	reg := registry.New()
	matcher := intent.New(reg)
	snap := &layout.Snapshot{
		Components: map[registry.ComponentID]layout.ComponentState{
			registry.Chart: {Visible: true, Size: layout.SizeLarge},
		},
	}

	tests := []struct {
		name   string
		result llm.MockResult
		reason FallbackReason
	}{
		{"backend error", llm.MockResult{Err: errors.New("connection refused")}, ReasonBackendError},
		{"empty content", llm.MockResult{Content: ""}, ReasonEmptyContent},
		{"malformed", llm.MockResult{Content: "I would resize the chart"}, ReasonMalformed},
		{"blank message", llm.MockResult{Content: `{"message":"","uiChanges":[]}`}, ReasonEmptyMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var observed []FallbackReason
			r := New(&llm.MockClient{Responses: []llm.MockResult{tt.result}}, matcher, reg,
				WithLogger(logging.Nop()),
				WithFallbackObserver(func(reason FallbackReason) { observed = append(observed, reason) }))

			reply, raws := r.Resolve(context.Background(), "make the chart bigger", snap, nil, nil)

			require.Equal(t, []FallbackReason{tt.reason}, observed)

			// The fallback output is exactly what the matcher alone produces.
			wantReply, wantCmds := matcher.Match("make the chart bigger", snap)
			require.Equal(t, wantReply, reply)
			require.Equal(t, command.FromCommands(wantCmds), raws)
		})
	}
}

func TestResolveTimeoutReason(t *testing.T) {
	var observed FallbackReason
	mock := &llm.MockClient{Responses: []llm.MockResult{{Err: fmt.Errorf("call: %w", context.DeadlineExceeded)}}}
	r := newTestResolver(mock, WithFallbackObserver(func(reason FallbackReason) { observed = reason }))

	reply, _ := r.Resolve(context.Background(), "hello", nil, nil, nil)
	require.Equal(t, ReasonTimeout, observed)
	require.NotEmpty(t, reply)
}

func TestResolveHonorsCallerCancellation(t *testing.T) {
	var observed FallbackReason
	r := newTestResolver(&llm.MockClient{}, WithFallbackObserver(func(reason FallbackReason) { observed = reason }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reply, _ := r.Resolve(ctx, "make the chart bigger", nil, nil, nil)
	require.Equal(t, ReasonBackendError, observed)
	require.NotEmpty(t, reply, "the deterministic fallback still answers")
}

func TestBuildMessagesTrimsHistory(t *testing.T) {
	r := newTestResolver(&llm.MockClient{})

	var history []session.Turn
	for i := 0; i < 30; i++ {
		history = append(history, session.Turn{Role: session.RoleUser, Content: fmt.Sprintf("turn %d", i)})
	}

	msgs := r.buildMessages("latest", nil, nil, history)
	// system + 10 history turns + the new user message
	require.Len(t, msgs, 12)
	require.Equal(t, "system", msgs[0].Role)
	require.Equal(t, "turn 20", msgs[1].Content, "only the most recent turns survive")
	require.Contains(t, msgs[11].Content, "latest")
}

func TestBuildMessagesIncludesLayoutAndUser(t *testing.T) {
	r := newTestResolver(&llm.MockClient{})

	snap := &layout.Snapshot{
		Components: map[registry.ComponentID]layout.ComponentState{
			registry.Chart: {Visible: true, Size: layout.SizeLarge},
		},
		Theme: layout.ThemeDark,
	}
	user := &layout.UserContext{Authenticated: true, Balance: 500, Currency: "USD"}

	msgs := r.buildMessages("hi", snap, user, nil)
	last := msgs[len(msgs)-1]
	require.Equal(t, "user", last.Role)
	require.Contains(t, last.Content, "CURRENT LAYOUT")
	require.Contains(t, last.Content, "chart")
	require.Contains(t, last.Content, "500.00 USD")
}

func TestWithKnowledgeTruncates(t *testing.T) {
	blob := strings.Repeat("trading platform frequently asked question answer text. ", 2000)
	r := newTestResolver(&llm.MockClient{}, WithKnowledge(blob, 100))

	require.NotEmpty(t, r.knowledge)
	require.Less(t, len(r.knowledge), len(blob))

	msgs := r.buildMessages("hi", nil, nil, nil)
	require.Contains(t, msgs[0].Content, "KNOWLEDGE BASE")
}
