// Package resolver adapts a generative text backend to the UI command
// contract, falling back to the deterministic intent matcher on any failure.
package resolver

import (
	"context"
	"errors"
	"time"

	"amy/internal/command"
	"amy/internal/intent"
	"amy/internal/layout"
	"amy/internal/llm"
	"amy/internal/logging"
	"amy/internal/registry"
	"amy/internal/session"
	tokenutil "amy/internal/shared/token"
)

const (
	defaultTimeout         = 20 * time.Second
	defaultKnowledgeBudget = 4096
	completionMaxTokens    = 1000
	completionTemperature  = 0.7
)

// Option customizes a Resolver.
type Option func(*Resolver)

// WithTimeout bounds a single backend call.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithKnowledge injects the opaque knowledge/FAQ text, truncated to budget
// tokens so an oversized blob cannot blow up every backend call.
func WithKnowledge(text string, budget int) Option {
	return func(r *Resolver) {
		if budget <= 0 {
			budget = defaultKnowledgeBudget
		}
		r.knowledge = tokenutil.TruncateToTokens(text, budget)
	}
}

// WithLogger overrides the component logger.
func WithLogger(logger logging.Logger) Option {
	return func(r *Resolver) { r.logger = logging.OrNop(logger) }
}

// WithFallbackObserver registers a callback invoked once per fallback.
func WithFallbackObserver(fn func(FallbackReason)) Option {
	return func(r *Resolver) { r.onFallback = fn }
}

// Resolver runs the generative backend and degrades to the matcher. Its
// Resolve never fails: the worst case is deterministic rule-based output.
type Resolver struct {
	client     llm.Client
	matcher    *intent.Matcher
	reg        *registry.Registry
	knowledge  string
	timeout    time.Duration
	logger     logging.Logger
	onFallback func(FallbackReason)
}

// New builds a resolver around the backend client and the matcher used as
// its fallback.
func New(client llm.Client, matcher *intent.Matcher, reg *registry.Registry, opts ...Option) *Resolver {
	r := &Resolver{
		client:  client,
		matcher: matcher,
		reg:     reg,
		timeout: defaultTimeout,
		logger:  logging.NewComponentLogger("resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps the message to a reply and raw commands. Any backend failure
// is swallowed: the matcher answers instead, with partial backend output
// discarded. The returned commands are unvalidated either way and must pass
// the normalizer.
func (r *Resolver) Resolve(ctx context.Context, message string, snap *layout.Snapshot, user *layout.UserContext, history []session.Turn) (string, []command.Raw) {
	reply, reason := r.tryBackend(ctx, message, snap, user, history)
	if reason == "" {
		return reply.Message, reply.UIChanges
	}

	r.logger.Warn("generative backend unusable (%s), falling back to rule-based matcher", reason)
	if r.onFallback != nil {
		r.onFallback(reason)
	}

	text, cmds := r.matcher.Match(message, snap)
	return text, command.FromCommands(cmds)
}

func (r *Resolver) tryBackend(ctx context.Context, message string, snap *layout.Snapshot, user *layout.UserContext, history []session.Turn) (*parsedReply, FallbackReason) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.Complete(callCtx, llm.Request{
		Messages:    r.buildMessages(message, snap, user, history),
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ReasonTimeout
		}
		return nil, ReasonBackendError
	}

	return parseReply(resp.Content)
}
