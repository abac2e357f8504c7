package n8n

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// ListExecutionsParams filters the execution history of one workflow.
type ListExecutionsParams struct {
	WorkflowID  string
	IncludeData *bool
	Status      *ExecutionStatus
	Limit       *int
	Cursor      *string
}

func (p *ListExecutionsParams) values() url.Values {
	values := url.Values{}
	values.Set("workflowId", p.WorkflowID)
	if p.IncludeData != nil {
		values.Set("includeData", strconv.FormatBool(*p.IncludeData))
	}
	if p.Status != nil {
		values.Set("status", string(*p.Status))
	}
	setPage(values, p.Limit, p.Cursor)
	return values
}

// ListExecutions returns the raw execution page for a workflow.
func (c *Client) ListExecutions(ctx context.Context, params *ListExecutionsParams) (json.RawMessage, error) {
	if params == nil {
		params = &ListExecutionsParams{}
	}
	return c.Do(ctx, &Request{
		Operation: "listExecutions",
		Endpoint:  withQuery("executions", params.values()),
	})
}
