package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/devaoto/go-musixmatch/internal/config"
	"github.com/devaoto/go-musixmatch/pkg/musixmatch"
	"go.uber.org/zap"
)

// Runner wires config and logger into a musixmatch client and executes a
// single endpoint call on behalf of the CLI.
type Runner struct {
	client *musixmatch.Client
	log    *zap.SugaredLogger
	out    io.Writer
}

// NewRunner builds a runner from config. out receives the response envelope.
func NewRunner(cfg *config.Config, log *zap.SugaredLogger, out io.Writer) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if out == nil {
		return nil, fmt.Errorf("output writer must not be nil")
	}

	opts := []musixmatch.Option{
		musixmatch.WithTimeout(cfg.HTTPTimeout),
		musixmatch.WithLogger(log),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, musixmatch.WithBaseURL(cfg.BaseURL))
	}

	return &Runner{
		client: musixmatch.New(cfg.APIKey, opts...),
		log:    log,
		out:    out,
	}, nil
}

// Run resolves the endpoint by wire name, parses the key=value pairs, issues
// the call, and writes the envelope as indented JSON.
func (r *Runner) Run(ctx context.Context, endpoint string, pairs []string) error {
	params, err := musixmatch.ParsePairs(pairs...)
	if err != nil {
		return err
	}

	env, err := r.client.Call(ctx, endpoint, params)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	return nil
}

// ListEndpoints writes the endpoint catalogue, one binding per line.
func (r *Runner) ListEndpoints() error {
	for _, ep := range musixmatch.Endpoints() {
		if _, err := fmt.Fprintf(r.out, "%-4s %s\n", ep.Method, ep.Name); err != nil {
			return err
		}
	}
	return nil
}
