package mcp

import (
	"context"
	"errors"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
	"github.com/viant/n8n-mcp/mcp/note"
)

// NewHandler returns an MCP handler exposing the n8n tools and the note
// resources. Every connection gets its own handler; all of them share the
// service, which holds no per-call state.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, tool := range s.Tools() {
		impl.RegisterTool(tool)
	}
	for _, resource := range s.Resources() {
		impl.RegisterResource(resource, s.readResourceHandler)
	}
	return impl, nil
}

// Resources lists the notes as MCP resources.
func (s *Service) Resources() []mcpschema.Resource {
	notes := s.notes.List()
	ret := make([]mcpschema.Resource, 0, len(notes))
	for _, n := range notes {
		mimeType := note.MimeType
		description := n.Description()
		ret = append(ret, mcpschema.Resource{
			Uri:         n.URI(),
			Name:        n.Title,
			MimeType:    &mimeType,
			Description: &description,
		})
	}
	return ret
}

// ReadResource returns the plain text content addressed by uri.
func (s *Service) ReadResource(_ context.Context, uri string) (*mcpschema.ReadResourceResult, error) {
	n, err := s.notes.Read(uri)
	if err != nil {
		return nil, err
	}
	mimeType := note.MimeType
	return &mcpschema.ReadResourceResult{Contents: []mcpschema.ReadResourceResultContentsElem{{
		Uri:      uri,
		MimeType: &mimeType,
		Text:     n.Content,
	}}}, nil
}

func (s *Service) readResourceHandler(ctx context.Context, request *mcpschema.ReadResourceRequest) (*mcpschema.ReadResourceResult, *jsonrpc.Error) {
	result, err := s.ReadResource(ctx, request.Params.Uri)
	if err != nil {
		code := jsonrpc.InternalError
		if errors.Is(err, note.ErrNotFound) {
			code = jsonrpc.InvalidParams
		}
		return nil, jsonrpc.NewError(code, err.Error(), nil)
	}
	return result, nil
}
