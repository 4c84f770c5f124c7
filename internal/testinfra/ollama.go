// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultOllamaImage is the official Ollama image.
	DefaultOllamaImage = "ollama/ollama:latest"

	// DefaultOllamaPort is Ollama's HTTP API port.
	DefaultOllamaPort = "11434"

	// DefaultOllamaModel is the 384-dimension sentence embedding model.
	DefaultOllamaModel = "all-minilm"
)

// OllamaContainer is a running Ollama server with one model pulled.
type OllamaContainer struct {
	testcontainers.Container
	URL   string
	Model string
}

// OllamaOption configures the Ollama container.
type OllamaOption func(*ollamaConfig)

type ollamaConfig struct {
	image        string
	model        string
	startTimeout time.Duration
	pullTimeout  time.Duration
}

// WithOllamaImage sets a custom Ollama image.
func WithOllamaImage(image string) OllamaOption {
	return func(c *ollamaConfig) {
		c.image = image
	}
}

// WithModel sets the model pulled at startup.
func WithModel(model string) OllamaOption {
	return func(c *ollamaConfig) {
		c.model = model
	}
}

// WithPullTimeout bounds the model download.
func WithPullTimeout(timeout time.Duration) OllamaOption {
	return func(c *ollamaConfig) {
		c.pullTimeout = timeout
	}
}

// NewOllamaContainer starts Ollama and pulls the configured model.
//
//	ollama, err := testinfra.NewOllamaContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, ctx, ollama)
func NewOllamaContainer(ctx context.Context, opts ...OllamaOption) (*OllamaContainer, error) {
	cfg := &ollamaConfig{
		image:        DefaultOllamaImage,
		model:        DefaultOllamaModel,
		startTimeout: 2 * time.Minute,
		pullTimeout:  5 * time.Minute,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{DefaultOllamaPort + "/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(DefaultOllamaPort+"/tcp"),
			wait.ForHTTP("/api/version").WithPort(DefaultOllamaPort+"/tcp"),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create ollama container: %w", err)
	}

	if err := pullModel(ctx, container, cfg.model, cfg.pullTimeout); err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, DefaultOllamaPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &OllamaContainer{
		Container: container,
		URL:       fmt.Sprintf("http://%s:%s", host, port.Port()),
		Model:     cfg.model,
	}, nil
}

func pullModel(ctx context.Context, container testcontainers.Container, model string, timeout time.Duration) error {
	pullCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	code, output, err := container.Exec(pullCtx, []string{"ollama", "pull", model})
	if err != nil {
		return fmt.Errorf("exec ollama pull: %w", err)
	}
	if code != 0 {
		out, _ := io.ReadAll(output)
		return fmt.Errorf("ollama pull %s failed with code %d: %s", model, code, out)
	}
	return nil
}
