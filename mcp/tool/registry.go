package tool

import (
	"fmt"

	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/n8n-mcp/n8n"
)

// Kind tells the dispatcher how a tool result is rendered.
type Kind int

const (
	// Read tools return the remote JSON pretty printed.
	Read Kind = iota
	// Write tools return a short confirmation sentence.
	Write
)

// Definition is the static description of one tool.
type Definition struct {
	Name        Name
	Description string
	Kind        Kind
	InputSchema mcpschema.ToolInputSchema
}

// Tool returns the MCP metadata of the definition.
func (d *Definition) Tool() mcpschema.Tool {
	desc := d.Description
	return mcpschema.Tool{Name: d.Name.String(), Description: &desc, InputSchema: d.InputSchema}
}

var definitions = []*Definition{
	{
		Name:        ListWorkflows,
		Description: "List workflows, optionally filtered by active state and tags",
		Kind:        Read,
		InputSchema: object(map[string]map[string]interface{}{
			"active": {"type": "boolean", "description": "Only return active (true) or inactive (false) workflows"},
			"tags":   {"type": "string", "description": "Comma separated tag names"},
			"limit":  limitProperty("workflows"),
			"cursor": cursorProperty(),
		}),
	},
	{
		Name:        GetWorkflow,
		Description: "Get a workflow by ID",
		Kind:        Read,
		InputSchema: object(map[string]map[string]interface{}{
			"workflowId": {"type": "string", "description": "ID of the workflow"},
		}, "workflowId"),
	},
	{
		Name:        CreateWorkflow,
		Description: "Create a workflow from nodes and connections",
		Kind:        Write,
		InputSchema: object(map[string]map[string]interface{}{
			"name":        {"type": "string", "description": "Workflow name"},
			"nodes":       nodesProperty(),
			"connections": connectionsProperty(),
			"settings":    {"type": "object", "description": "Workflow settings"},
		}, "name", "nodes", "connections"),
	},
	{
		Name:        UpdateWorkflow,
		Description: "Update fields of an existing workflow; omitted fields are left unchanged",
		Kind:        Write,
		InputSchema: object(map[string]map[string]interface{}{
			"workflowId":  {"type": "string", "description": "ID of the workflow to update"},
			"name":        {"type": "string", "description": "New workflow name"},
			"nodes":       nodesProperty(),
			"connections": connectionsProperty(),
			"settings":    {"type": "object", "description": "Workflow settings"},
		}, "workflowId"),
	},
	{
		Name:        GetExecutions,
		Description: "List executions of a workflow",
		Kind:        Read,
		InputSchema: object(map[string]map[string]interface{}{
			"workflowId":  {"type": "string", "description": "ID of the workflow"},
			"includeData": {"type": "boolean", "description": "Include execution data"},
			"status":      {"type": "string", "enum": executionStatuses(), "description": "Filter by execution status"},
			"limit":       limitProperty("executions"),
			"cursor":      cursorProperty(),
		}, "workflowId"),
	},
	{
		Name:        ActivateWorkflow,
		Description: "Activate or deactivate a workflow",
		Kind:        Write,
		InputSchema: object(map[string]map[string]interface{}{
			"workflowId": {"type": "string", "description": "ID of the workflow"},
			"active":     {"type": "boolean", "description": "true to activate, false to deactivate"},
		}, "workflowId", "active"),
	},
	{
		Name:        CreateCredential,
		Description: "Create a credential; use get_credential_schema to discover the data fields of a type",
		Kind:        Write,
		InputSchema: object(map[string]map[string]interface{}{
			"name": {"type": "string", "description": "Credential name"},
			"type": {"type": "string", "description": "Credential type, e.g. githubApi"},
			"data": {"type": "object", "description": "Credential data required by the type"},
		}, "name", "type", "data"),
	},
	{
		Name:        GetCredentialSchema,
		Description: "Get the data schema of a credential type",
		Kind:        Read,
		InputSchema: object(map[string]map[string]interface{}{
			"credentialType": {"type": "string", "description": "Credential type, e.g. githubApi"},
		}, "credentialType"),
	},
}

var byName = func() map[Name]*Definition {
	ret := make(map[Name]*Definition, len(definitions))
	for _, d := range definitions {
		ret[d.Name] = d
	}
	return ret
}()

// Definitions returns all tool definitions in registration order.
func Definitions() []*Definition {
	return append([]*Definition{}, definitions...)
}

// Lookup returns the definition registered under name.
func Lookup(name string) (*Definition, error) {
	if d, ok := byName[Name(name)]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
}

func object(props map[string]map[string]interface{}, required ...string) mcpschema.ToolInputSchema {
	return mcpschema.ToolInputSchema{Type: "object", Properties: props, Required: required}
}

func limitProperty(what string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"minimum":     1,
		"maximum":     n8n.MaxLimit,
		"description": fmt.Sprintf("Maximum number of %s to return (capped at %d)", what, n8n.MaxLimit),
	}
}

func cursorProperty() map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": "Pagination cursor from a previous response"}
}

func nodesProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": "Workflow node definitions",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"name":        map[string]interface{}{"type": "string"},
				"type":        map[string]interface{}{"type": "string"},
				"typeVersion": map[string]interface{}{"type": "number"},
				"position":    map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "number"}},
				"parameters":  map[string]interface{}{"type": "object"},
				"credentials": map[string]interface{}{"type": "object"},
			},
			"required": []string{"name", "type", "typeVersion", "position", "parameters"},
		},
	}
}

func connectionsProperty() map[string]interface{} {
	return map[string]interface{}{"type": "object", "description": "Connections keyed by source node name"}
}

func executionStatuses() []string {
	ret := make([]string, 0, len(n8n.ExecutionStatuses))
	for _, s := range n8n.ExecutionStatuses {
		ret = append(ret, string(s))
	}
	return ret
}
