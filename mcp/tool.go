package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
	"github.com/viant/n8n-mcp/internal/conv"
	"github.com/viant/n8n-mcp/mcp/matcher"
	"github.com/viant/n8n-mcp/mcp/tool"
	"github.com/viant/n8n-mcp/n8n"
)

// outcome is what an executor got back from n8n: the raw JSON for read tools,
// a confirmation sentence for write tools.
type outcome struct {
	raw     json.RawMessage
	message string
}

type executor func(s *Service, ctx context.Context, args map[string]interface{}) (*outcome, error)

var executors = map[tool.Name]executor{
	tool.ListWorkflows:       (*Service).listWorkflows,
	tool.GetWorkflow:         (*Service).getWorkflow,
	tool.CreateWorkflow:      (*Service).createWorkflow,
	tool.UpdateWorkflow:      (*Service).updateWorkflow,
	tool.GetExecutions:       (*Service).getExecutions,
	tool.ActivateWorkflow:    (*Service).activateWorkflow,
	tool.CreateCredential:    (*Service).createCredential,
	tool.GetCredentialSchema: (*Service).getCredentialSchema,
}

// ExecuteTool validates args, runs the named tool against n8n and returns the
// text shown to the caller.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	def, err := tool.Lookup(name)
	if err != nil {
		return "", err
	}
	exec, ok := executors[def.Name]
	if !ok {
		return "", fmt.Errorf("%w: %s", tool.ErrUnknownTool, name)
	}
	out, err := exec(s, ctx, args)
	if err != nil {
		return "", err
	}
	return render(def.Kind, out)
}

// render turns an outcome into caller text according to the tool kind.
func render(kind tool.Kind, out *outcome) (string, error) {
	switch kind {
	case tool.Read:
		return conv.IndentJSON(out.raw)
	default:
		return out.message, nil
	}
}

// Tools returns an MCP tool entry for every registered definition.
func (s *Service) Tools() serverproto.Tools {
	var result = make(serverproto.Tools, 0)
	for _, def := range tool.Definitions() {
		result = append(result, s.toolEntry(def))
	}
	return result
}

// LookupTool returns the MCP tool entry registered under name.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	def, err := tool.Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.toolEntry(def), nil
}

// MatchTools returns tools whose name matches pattern (see matcher.Match).
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	var result = make(serverproto.Tools, 0)
	for _, entry := range s.Tools() {
		if matcher.Match(pattern, entry.Metadata.Name) {
			result = append(result, entry)
		}
	}
	return result
}

func (s *Service) toolEntry(def *tool.Definition) *serverproto.ToolEntry {
	name := def.Name.String()
	return &serverproto.ToolEntry{
		Metadata: def.Tool(),
		Handler: func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			text, err := s.ExecuteTool(ctx, name, request.Params.Arguments)
			if err != nil {
				return nil, toRPCError(err)
			}
			return &mcpschema.CallToolResult{Content: []mcpschema.CallToolResultContentElem{{
				Type: "text",
				Text: text,
			}}}, nil
		},
	}
}

// toRPCError maps dispatcher errors onto JSON-RPC error codes.
func toRPCError(err error) *jsonrpc.Error {
	var validationErr *tool.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return jsonrpc.NewError(jsonrpc.InvalidParams, err.Error(), nil)
	case errors.Is(err, tool.ErrUnknownTool):
		return jsonrpc.NewError(jsonrpc.MethodNotFound, err.Error(), nil)
	default:
		return jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
	}
}

func (s *Service) listWorkflows(ctx context.Context, args map[string]interface{}) (*outcome, error) {
	req, err := tool.Decode[tool.ListWorkflowsRequest](args)
	if err != nil {
		return nil, err
	}
	return rawOutcome(s.client.ListWorkflows(ctx, req.Params()))
}

func (s *Service) getWorkflow(ctx context.Context, args map[string]interface{}) (*outcome, error) {
	req, err := tool.Decode[tool.GetWorkflowRequest](args)
	if err != nil {
		return nil, err
	}
	return rawOutcome(s.client.GetWorkflow(ctx, req.WorkflowID))
}

func (s *Service) createWorkflow(ctx context.Context, args map[string]interface{}) (*outcome, error) {
	req, err := tool.Decode[tool.CreateWorkflowRequest](args)
	if err != nil {
		return nil, err
	}
	wf, err := s.client.CreateWorkflow(ctx, req.Workflow())
	if err != nil {
		return nil, err
	}
	return &outcome{message: fmt.Sprintf("Successfully created workflow %q with ID: %s", wf.Name, wf.ID)}, nil
}

func (s *Service) updateWorkflow(ctx context.Context, args map[string]interface{}) (*outcome, error) {
	req, err := tool.Decode[tool.UpdateWorkflowRequest](args)
	if err != nil {
		return nil, err
	}
	wf, err := s.client.UpdateWorkflow(ctx, req.WorkflowID, req.Update())
	if err != nil {
		return nil, err
	}
	return &outcome{message: fmt.Sprintf("Successfully updated workflow %q (ID: %s)", wf.Name, idOr(wf, req.WorkflowID))}, nil
}

func (s *Service) getExecutions(ctx context.Context, args map[string]interface{}) (*outcome, error) {
	req, err := tool.Decode[tool.GetExecutionsRequest](args)
	if err != nil {
		return nil, err
	}
	return rawOutcome(s.client.ListExecutions(ctx, req.Params()))
}

func (s *Service) activateWorkflow(ctx context.Context, args map[string]interface{}) (*outcome, error) {
	req, err := tool.Decode[tool.ActivateWorkflowRequest](args)
	if err != nil {
		return nil, err
	}
	active := *req.Active
	wf, err := s.client.ActivateWorkflow(ctx, req.WorkflowID, active)
	if err != nil {
		return nil, err
	}
	state := "deactivated"
	if active {
		state = "activated"
	}
	return &outcome{message: fmt.Sprintf("Workflow %q (ID: %s) has been %s", wf.Name, idOr(wf, req.WorkflowID), state)}, nil
}

func (s *Service) createCredential(ctx context.Context, args map[string]interface{}) (*outcome, error) {
	req, err := tool.Decode[tool.CreateCredentialRequest](args)
	if err != nil {
		return nil, err
	}
	cred, err := s.client.CreateCredential(ctx, req.Credential())
	if err != nil {
		return nil, err
	}
	return &outcome{message: fmt.Sprintf("Successfully created credential %q with ID: %s", cred.Name, cred.ID)}, nil
}

func (s *Service) getCredentialSchema(ctx context.Context, args map[string]interface{}) (*outcome, error) {
	req, err := tool.Decode[tool.GetCredentialSchemaRequest](args)
	if err != nil {
		return nil, err
	}
	return rawOutcome(s.client.GetCredentialSchema(ctx, req.CredentialType))
}

func rawOutcome(data json.RawMessage, err error) (*outcome, error) {
	if err != nil {
		return nil, err
	}
	return &outcome{raw: data}, nil
}

// idOr prefers the id echoed by n8n, falling back to the requested one.
func idOr(wf *n8n.Workflow, id string) string {
	if wf.ID != "" {
		return wf.ID
	}
	return id
}
