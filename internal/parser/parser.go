// Package parser turns freeform task text into a structured draft.
package parser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"focusflow/internal/model"
	pkgLog "focusflow/pkg/log"
)

// Parser prefers the upstream drafter and falls back to the rules on any failure.
type Parser struct {
	l        pkgLog.Logger
	rules    *Rules
	upstream Drafter
	limiter  Limiter
	timeout  time.Duration
}

// New creates a Parser. upstream and limiter may be nil.
func New(l pkgLog.Logger, rules *Rules, upstream Drafter, limiter Limiter, cfg Config) *Parser {
	timeout := cfg.UpstreamTimeout
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}
	return &Parser{
		l:        l,
		rules:    rules,
		upstream: upstream,
		limiter:  limiter,
		timeout:  timeout,
	}
}

// Parse always returns a complete draft. owner keys the upstream rate limit.
func (p *Parser) Parse(ctx context.Context, owner, rawText string, now time.Time) Result {
	draft, err := p.tryUpstream(ctx, owner, rawText, now)
	if err == nil {
		return Result{Draft: draft, Source: SourceUpstream}
	}
	if !errors.Is(err, ErrUpstreamDisabled) {
		p.l.Warnf(ctx, "parser.Parse: upstream unavailable, using rules: owner=%s err=%v", owner, err)
	}

	return Result{Draft: p.rules.Parse(rawText, now), Source: SourceRules}
}

func (p *Parser) tryUpstream(ctx context.Context, owner, rawText string, now time.Time) (model.TaskDraft, error) {
	if p.upstream == nil {
		return model.TaskDraft{}, ErrUpstreamDisabled
	}
	if p.limiter != nil {
		if err := p.limiter.Allow(owner); err != nil {
			return model.TaskDraft{}, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	type outcome struct {
		draft model.TaskDraft
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		d, err := p.upstream.Draft(ctx, rawText, now)
		done <- outcome{d, err}
	}()

	// The drafter may ignore ctx; the select keeps the deadline hard either way.
	select {
	case o := <-done:
		if o.err != nil {
			return model.TaskDraft{}, o.err
		}
		if !o.draft.Valid() {
			return model.TaskDraft{}, ErrInvalidDraft
		}
		return o.draft, nil
	case <-ctx.Done():
		return model.TaskDraft{}, fmt.Errorf("upstream draft: %w", ctx.Err())
	}
}
