package n8n

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// ListWorkflowsParams holds optional list filters; nil fields are not sent.
type ListWorkflowsParams struct {
	Active *bool
	Tags   *string
	Limit  *int
	Cursor *string
}

func (p *ListWorkflowsParams) values() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}
	if p.Active != nil {
		values.Set("active", strconv.FormatBool(*p.Active))
	}
	if p.Tags != nil {
		values.Set("tags", *p.Tags)
	}
	setPage(values, p.Limit, p.Cursor)
	return values
}

// WorkflowCreate is the body of a create request.
type WorkflowCreate struct {
	Name        string                 `json:"name"`
	Nodes       []Node                 `json:"nodes"`
	Connections Connections            `json:"connections"`
	Settings    map[string]interface{} `json:"settings,omitempty"`
}

// WorkflowUpdate is a partial update; nil fields are left out of the body.
type WorkflowUpdate struct {
	Name        *string                 `json:"name,omitempty"`
	Nodes       *[]Node                 `json:"nodes,omitempty"`
	Connections *Connections            `json:"connections,omitempty"`
	Settings    *map[string]interface{} `json:"settings,omitempty"`
}

// ListWorkflows returns the raw workflow page.
func (c *Client) ListWorkflows(ctx context.Context, params *ListWorkflowsParams) (json.RawMessage, error) {
	return c.Do(ctx, &Request{
		Operation: "listWorkflows",
		Endpoint:  withQuery("workflows", params.values()),
	})
}

// GetWorkflow returns the raw workflow record.
func (c *Client) GetWorkflow(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, &Request{
		Operation: "getWorkflow",
		Endpoint:  "workflows/" + url.PathEscape(id),
	})
}

// CreateWorkflow creates a workflow and returns the server-assigned record.
func (c *Client) CreateWorkflow(ctx context.Context, workflow *WorkflowCreate) (*Workflow, error) {
	ret := &Workflow{}
	err := c.call(ctx, &Request{
		Operation: "createWorkflow",
		Method:    http.MethodPost,
		Endpoint:  "workflows",
		Body:      workflow,
	}, ret)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// UpdateWorkflow sends a partial update for id.
func (c *Client) UpdateWorkflow(ctx context.Context, id string, update *WorkflowUpdate) (*Workflow, error) {
	if update == nil {
		update = &WorkflowUpdate{}
	}
	ret := &Workflow{}
	err := c.call(ctx, &Request{
		Operation: "updateWorkflow",
		Method:    http.MethodPut,
		Endpoint:  "workflows/" + url.PathEscape(id),
		Body:      update,
	}, ret)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// ActivateWorkflow activates or deactivates id depending on active.
func (c *Client) ActivateWorkflow(ctx context.Context, id string, active bool) (*Workflow, error) {
	action, operation := "deactivate", "deactivateWorkflow"
	if active {
		action, operation = "activate", "activateWorkflow"
	}
	ret := &Workflow{}
	err := c.call(ctx, &Request{
		Operation: operation,
		Method:    http.MethodPost,
		Endpoint:  "workflows/" + url.PathEscape(id) + "/" + action,
	}, ret)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// ClampLimit caps limit at MaxLimit.
func ClampLimit(limit int) int {
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func setPage(values url.Values, limit *int, cursor *string) {
	if limit != nil {
		values.Set("limit", strconv.Itoa(ClampLimit(*limit)))
	}
	if cursor != nil {
		values.Set("cursor", *cursor)
	}
}

func withQuery(endpoint string, values url.Values) string {
	if len(values) == 0 {
		return endpoint
	}
	return endpoint + "?" + values.Encode()
}
