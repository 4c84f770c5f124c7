// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package embedding

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestCachedEmbedder_HitsSkipProvider(t *testing.T) {
	t.Parallel()

	fake := newFakeEmbedder(3)
	c := NewCachedEmbedder(fake, 8, time.Minute)
	ctx := context.Background()

	first, err := c.Embed(ctx, "space battles")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	second, err := c.Embed(ctx, "space battles")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("cached vector differs from original")
	}
	if calls, _ := fake.counts(); calls != 1 {
		t.Errorf("provider calls = %d, want 1", calls)
	}
	if s := c.Stats(); s.Hits != 1 || s.Misses != 1 {
		t.Errorf("Stats = %+v", s)
	}
}

func TestCachedEmbedder_ReturnsCopies(t *testing.T) {
	t.Parallel()

	c := NewCachedEmbedder(newFakeEmbedder(3), 8, time.Minute)
	ctx := context.Background()

	v, _ := c.Embed(ctx, "q")
	want := v.Clone()
	v[0] = -100

	again, _ := c.Embed(ctx, "q")
	if !reflect.DeepEqual(again, want) {
		t.Errorf("caller mutation leaked into cache: %v", again)
	}
	again[1] = -100
	third, _ := c.Embed(ctx, "q")
	if !reflect.DeepEqual(third, want) {
		t.Errorf("cache hit mutation leaked into cache: %v", third)
	}
}

func TestCachedEmbedder_ErrorsNotCached(t *testing.T) {
	t.Parallel()

	fake := newFakeEmbedder(3)
	fake.setErr(errors.New("down"))
	c := NewCachedEmbedder(fake, 8, time.Minute)
	ctx := context.Background()

	if _, err := c.Embed(ctx, "q"); err == nil {
		t.Fatal("expected error")
	}
	fake.setErr(nil)
	if _, err := c.Embed(ctx, "q"); err != nil {
		t.Fatalf("Embed after recovery: %v", err)
	}
	if calls, _ := fake.counts(); calls != 2 {
		t.Errorf("provider calls = %d, want 2", calls)
	}
}

func TestCachedEmbedder_BatchBypassesCache(t *testing.T) {
	t.Parallel()

	fake := newFakeEmbedder(3)
	c := NewCachedEmbedder(fake, 8, time.Minute)

	if _, err := c.EmbedBatch(context.Background(), []string{"a", "b"}); err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}
	if c.Stats().Size != 0 {
		t.Error("batch results should not populate the query cache")
	}
}
