package tool

import (
	"github.com/viant/n8n-mcp/internal/conv"
	"github.com/viant/n8n-mcp/n8n"
)

// Request is implemented by every typed tool request.
type Request interface {
	Validate() error
}

// Decode builds a typed request of type T from the untyped argument bag and
// validates it.
func Decode[T any, PT interface {
	*T
	Request
}](args map[string]interface{}) (*T, error) {
	ret := PT(new(T))
	if err := conv.Decode(args, ret); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return (*T)(ret), nil
}

type ListWorkflowsRequest struct {
	Active *bool   `json:"active,omitempty"`
	Tags   *string `json:"tags,omitempty"`
	Limit  *int    `json:"limit,omitempty"`
	Cursor *string `json:"cursor,omitempty"`
}

func (r *ListWorkflowsRequest) Validate() error { return nil }

// Params converts the request into client filters.
func (r *ListWorkflowsRequest) Params() *n8n.ListWorkflowsParams {
	return &n8n.ListWorkflowsParams{Active: r.Active, Tags: r.Tags, Limit: r.Limit, Cursor: r.Cursor}
}

type GetWorkflowRequest struct {
	WorkflowID string `json:"workflowId"`
}

func (r *GetWorkflowRequest) Validate() error {
	if r.WorkflowID == "" {
		return missing("workflowId")
	}
	return nil
}

type CreateWorkflowRequest struct {
	Name        string                 `json:"name"`
	Nodes       []n8n.Node             `json:"nodes"`
	Connections n8n.Connections        `json:"connections"`
	Settings    map[string]interface{} `json:"settings,omitempty"`
}

func (r *CreateWorkflowRequest) Validate() error {
	switch {
	case r.Name == "":
		return missing("name")
	case r.Nodes == nil:
		return missing("nodes")
	case r.Connections == nil:
		return missing("connections")
	}
	return nil
}

// Workflow converts the request into the create body.
func (r *CreateWorkflowRequest) Workflow() *n8n.WorkflowCreate {
	return &n8n.WorkflowCreate{Name: r.Name, Nodes: r.Nodes, Connections: r.Connections, Settings: r.Settings}
}

type UpdateWorkflowRequest struct {
	WorkflowID  string                  `json:"workflowId"`
	Name        *string                 `json:"name,omitempty"`
	Nodes       *[]n8n.Node             `json:"nodes,omitempty"`
	Connections *n8n.Connections        `json:"connections,omitempty"`
	Settings    *map[string]interface{} `json:"settings,omitempty"`
}

func (r *UpdateWorkflowRequest) Validate() error {
	if r.WorkflowID == "" {
		return missing("workflowId")
	}
	return nil
}

// Update returns the partial update body; the workflow id is not part of it.
func (r *UpdateWorkflowRequest) Update() *n8n.WorkflowUpdate {
	return &n8n.WorkflowUpdate{Name: r.Name, Nodes: r.Nodes, Connections: r.Connections, Settings: r.Settings}
}

type GetExecutionsRequest struct {
	WorkflowID  string               `json:"workflowId"`
	IncludeData *bool                `json:"includeData,omitempty"`
	Status      *n8n.ExecutionStatus `json:"status,omitempty"`
	Limit       *int                 `json:"limit,omitempty"`
	Cursor      *string              `json:"cursor,omitempty"`
}

func (r *GetExecutionsRequest) Validate() error {
	if r.WorkflowID == "" {
		return missing("workflowId")
	}
	return nil
}

// Params converts the request into client filters.
func (r *GetExecutionsRequest) Params() *n8n.ListExecutionsParams {
	return &n8n.ListExecutionsParams{
		WorkflowID:  r.WorkflowID,
		IncludeData: r.IncludeData,
		Status:      r.Status,
		Limit:       r.Limit,
		Cursor:      r.Cursor,
	}
}

type ActivateWorkflowRequest struct {
	WorkflowID string `json:"workflowId"`
	Active     *bool  `json:"active,omitempty"`
}

func (r *ActivateWorkflowRequest) Validate() error {
	switch {
	case r.WorkflowID == "":
		return missing("workflowId")
	case r.Active == nil:
		return missing("active")
	}
	return nil
}

type CreateCredentialRequest struct {
	Name string                 `json:"name"`
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

func (r *CreateCredentialRequest) Validate() error {
	switch {
	case r.Name == "":
		return missing("name")
	case r.Type == "":
		return missing("type")
	case r.Data == nil:
		return missing("data")
	}
	return nil
}

// Credential converts the request into the create body.
func (r *CreateCredentialRequest) Credential() *n8n.CredentialCreate {
	return &n8n.CredentialCreate{Name: r.Name, Type: r.Type, Data: r.Data}
}

type GetCredentialSchemaRequest struct {
	CredentialType string `json:"credentialType"`
}

func (r *GetCredentialSchemaRequest) Validate() error {
	if r.CredentialType == "" {
		return missing("credentialType")
	}
	return nil
}
