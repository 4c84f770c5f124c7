// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

const storeKeyPrefix = "vec:"

type storedVector struct {
	Model     string    `json:"model"`
	Dimension int       `json:"dimension"`
	Vector    Vector    `json:"vector"`
	CreatedAt time.Time `json:"created_at"`
}

// BadgerStore persists vectors keyed by model and text digest so a restart
// does not re-embed an unchanged catalog.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (or creates) a store in dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	opts.ValueLogFileSize = 64 << 20

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open embedding store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// NewBadgerStoreFromDB wraps an already open database.
func NewBadgerStoreFromDB(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

func storeKey(model, text string) []byte {
	sum := sha256.Sum256([]byte(text))
	return []byte(storeKeyPrefix + model + ":" + hex.EncodeToString(sum[:]))
}

// GetMany looks up texts for model. The result has one slot per text; misses are nil.
func (s *BadgerStore) GetMany(model string, texts []string) ([]Vector, error) {
	out := make([]Vector, len(texts))
	err := s.db.View(func(txn *badger.Txn) error {
		for i, text := range texts {
			item, err := txn.Get(storeKey(model, text))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("get vector: %w", err)
			}

			var sv storedVector
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &sv)
			}); err != nil {
				return fmt.Errorf("decode vector: %w", err)
			}
			if sv.Model == model && len(sv.Vector) == sv.Dimension {
				out[i] = sv.Vector
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PutMany stores vectors[i] for texts[i].
func (s *BadgerStore) PutMany(model string, texts []string, vectors []Vector) error {
	if len(texts) != len(vectors) {
		return fmt.Errorf("put vectors: %d texts but %d vectors", len(texts), len(vectors))
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	now := time.Now().UTC()
	for i, text := range texts {
		data, err := json.Marshal(storedVector{
			Model:     model,
			Dimension: len(vectors[i]),
			Vector:    vectors[i],
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("encode vector: %w", err)
		}
		if err := wb.Set(storeKey(model, text), data); err != nil {
			return fmt.Errorf("set vector: %w", err)
		}
	}
	return wb.Flush()
}

// Count returns how many vectors are stored for model.
func (s *BadgerStore) Count(model string) (int, error) {
	n := 0
	prefix := []byte(storeKeyPrefix + model + ":")
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// StoreEmbedder serves EmbedBatch from a BadgerStore and embeds only the
// misses. Embed (user queries) bypasses the store so queries are never
// written to disk.
type StoreEmbedder struct {
	next   Embedder
	store  *BadgerStore
	logger zerolog.Logger
}

// NewStoreEmbedder wraps next with store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewStoreEmbedder(next Embedder, store *BadgerStore, logger zerolog.Logger) *StoreEmbedder {
	return &StoreEmbedder{next: next, store: store, logger: logger}
}

// Model implements Embedder.
func (s *StoreEmbedder) Model() string { return s.next.Model() }

// Dimension implements Embedder.
func (s *StoreEmbedder) Dimension() int { return s.next.Dimension() }

// Embed implements Embedder.
func (s *StoreEmbedder) Embed(ctx context.Context, text string) (Vector, error) {
	return s.next.Embed(ctx, text)
}

// EmbedBatch implements Embedder.
func (s *StoreEmbedder) EmbedBatch(ctx context.Context, texts []string) ([]Vector, error) {
	model := s.next.Model()

	out, err := s.store.GetMany(model, texts)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Embedding store read failed, embedding everything")
		out = make([]Vector, len(texts))
	}

	var missIdx []int
	var missTexts []string
	for i, v := range out {
		if v == nil || len(v) != s.next.Dimension() {
			out[i] = nil
			missIdx = append(missIdx, i)
			missTexts = append(missTexts, texts[i])
		}
	}

	hits := len(texts) - len(missIdx)
	metrics.RecordCacheCounts("store", hits, len(missIdx))
	s.logger.Debug().Int("hits", hits).Int("misses", len(missIdx)).Msg("Embedding store lookup")

	if len(missTexts) == 0 {
		return out, nil
	}

	fresh, err := s.next.EmbedBatch(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	for j, i := range missIdx {
		out[i] = fresh[j]
	}

	if err := s.store.PutMany(model, missTexts, fresh); err != nil {
		s.logger.Warn().Err(err).Msg("Embedding store write failed")
	}
	return out, nil
}

// Ping forwards to the wrapped embedder when it supports health checks.
func (s *StoreEmbedder) Ping(ctx context.Context) error {
	if p, ok := s.next.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
