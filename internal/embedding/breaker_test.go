// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package embedding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestBreakerEmbedder_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	fake := newFakeEmbedder(3)
	fake.setErr(errors.New("connection refused"))
	b := NewBreakerEmbedder(fake, BreakerConfig{MaxFailures: 2, Timeout: time.Hour}, zerolog.Nop())

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := b.Embed(ctx, "x"); err == nil || errors.Is(err, ErrProviderUnavailable) {
			t.Fatalf("call %d: expected provider error, got %v", i, err)
		}
	}
	if b.State() != "open" {
		t.Fatalf("State = %q, want open", b.State())
	}

	_, err := b.EmbedBatch(ctx, []string{"x"})
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
	if calls, batch := fake.counts(); calls != 2 || batch != 0 {
		t.Errorf("open breaker reached provider: calls=%d batch=%d", calls, batch)
	}
}

func TestBreakerEmbedder_RecoversAfterTimeout(t *testing.T) {
	t.Parallel()

	fake := newFakeEmbedder(3)
	fake.setErr(errors.New("boom"))
	b := NewBreakerEmbedder(fake, BreakerConfig{MaxFailures: 1, Timeout: 20 * time.Millisecond}, zerolog.Nop())

	ctx := context.Background()
	_, _ = b.Embed(ctx, "x")
	if b.State() != "open" {
		t.Fatalf("State = %q, want open", b.State())
	}

	fake.setErr(nil)
	time.Sleep(40 * time.Millisecond)

	if _, err := b.Embed(ctx, "x"); err != nil {
		t.Fatalf("probe after timeout: %v", err)
	}
	if b.State() != "closed" {
		t.Errorf("State = %q, want closed", b.State())
	}
}

func TestBreakerEmbedder_CancellationDoesNotTrip(t *testing.T) {
	t.Parallel()

	fake := newFakeEmbedder(3)
	b := NewBreakerEmbedder(fake, BreakerConfig{MaxFailures: 1, Timeout: time.Hour}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 3; i++ {
		if _, err := b.Embed(ctx, "x"); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	}
	if b.State() != "closed" {
		t.Errorf("State = %q, cancellations should not open the breaker", b.State())
	}
}

func TestBreakerEmbedder_PassThrough(t *testing.T) {
	t.Parallel()

	fake := newFakeEmbedder(4)
	b := NewBreakerEmbedder(fake, BreakerConfig{}, zerolog.Nop())

	vs, err := b.EmbedBatch(context.Background(), []string{"a", "b"})
	if err != nil || len(vs) != 2 {
		t.Fatalf("EmbedBatch = %v, %v", vs, err)
	}
	if b.Model() != "fake" || b.Dimension() != 4 {
		t.Errorf("Model/Dimension = %s/%d", b.Model(), b.Dimension())
	}
	if err := b.Ping(context.Background()); err != nil {
		t.Errorf("Ping on non-Pinger should be nil, got %v", err)
	}
}
