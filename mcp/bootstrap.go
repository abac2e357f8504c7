package mcp

import (
	"context"
	"log/slog"

	"github.com/viant/n8n-mcp/mcp/config"
	"github.com/viant/n8n-mcp/mcp/note"
	"github.com/viant/n8n-mcp/n8n"
)

// init is the main bootstrap routine invoked by New once all options have
// been applied.
func (s *Service) init(_ context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return err
	}

	s.initClient()
	return nil
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = config.FromEnv()
	}
	if s.notes == nil {
		s.notes = note.Default()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
}

func (s *Service) initClient() {
	opts := []n8n.Option{n8n.WithLogger(s.logger)}
	if s.httpClient != nil {
		opts = append(opts, n8n.WithHTTPClient(s.httpClient))
	}
	if s.config.N8N.Timeout > 0 {
		opts = append(opts, n8n.WithTimeout(s.config.N8N.Timeout))
	}
	s.client = n8n.New(s.config.N8N.Host, s.config.N8N.APIKey, opts...)
}
