package mcp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/viant/n8n-mcp/mcp/config"
	"github.com/viant/n8n-mcp/mcp/note"
	"github.com/viant/n8n-mcp/n8n"
)

// Service bundles configuration, the n8n API client and the note store
// required by the MCP adapter. Bootstrap lives in bootstrap.go; the tool
// dispatcher in tool.go.
type Service struct {
	config     *config.Config
	client     *n8n.Client
	notes      *note.Store
	httpClient *http.Client
	logger     *slog.Logger
}

// Config returns the effective configuration instance passed to the service at
// construction time.  Callers must treat the returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Client returns the n8n API client used by every tool.
func (s *Service) Client() *n8n.Client { return s.client }

// Notes returns the placeholder note store.
func (s *Service) Notes() *note.Store { return s.notes }

// Option modifies a service instance before it is initialised. Users can pass
// an arbitrary number of options to New.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted the
// environment backed configuration is used.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithHTTPClient overrides the http.Client used for n8n calls.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) {
		s.httpClient = c
	}
}

// WithLogger sets the logger used for outbound request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithNotes replaces the default placeholder notes.
func WithNotes(store *note.Store) Option {
	return func(s *Service) {
		s.notes = store
	}
}

// New constructs a new service instance. The actual bootstrap is handled by
// init() in bootstrap.go so that callers do not need to care about the
// internal initialisation sequence.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// NewWithConfig is a shorthand for New(ctx, WithConfig(cfg), opts...).
func NewWithConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*Service, error) {
	return New(ctx, append([]Option{WithConfig(cfg)}, opts...)...)
}
