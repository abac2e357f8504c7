package n8n_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/n8n-mcp/internal/conv"
	"github.com/viant/n8n-mcp/n8n"
	"github.com/viant/n8n-mcp/n8n/n8ntest"
)

func TestBaseURL(t *testing.T) {
	testCases := []struct {
		host   string
		expect string
	}{
		{"http://localhost:5678", "http://localhost:5678/api/v1/"},
		{"http://localhost:5678/", "http://localhost:5678/api/v1/"},
		{"http://localhost:5678/api/v1", "http://localhost:5678/api/v1/"},
		{"http://localhost:5678/api/v1/", "http://localhost:5678/api/v1/"},
		{"https://n8n.example.com/base", "https://n8n.example.com/base/api/v1/"},
	}
	for _, tc := range testCases {
		assert.EqualValues(t, tc.expect, n8n.BaseURL(tc.host), tc.host)
	}
}

func TestClient_URL(t *testing.T) {
	client := n8n.New("http://localhost:5678/", "key")
	assert.EqualValues(t, "http://localhost:5678/api/v1/workflows", client.URL("/workflows"))
	assert.EqualValues(t, "http://localhost:5678/api/v1/workflows", client.URL("workflows"))
	assert.EqualValues(t, "http://localhost:5678/api/v1/workflows", client.URL("//workflows"))
}

func newClient(t *testing.T) (*n8n.Client, *n8ntest.Server) {
	t.Helper()
	srv := n8ntest.New()
	t.Cleanup(srv.Close)
	return n8n.New(srv.URL, "secret"), srv
}

func TestClient_Do_Headers(t *testing.T) {
	client, srv := newClient(t)
	_, err := client.Do(context.Background(), &n8n.Request{
		Operation: "listWorkflows",
		Endpoint:  "workflows",
		Headers:   map[string]string{"X-Trace": "abc", n8n.APIKeyHeader: "ignored"},
	})
	require.NoError(t, err)

	last := srv.Last()
	assert.EqualValues(t, "secret", last.Header.Get(n8n.APIKeyHeader))
	assert.EqualValues(t, "application/json", last.Header.Get("Content-Type"))
	assert.EqualValues(t, "abc", last.Header.Get("X-Trace"))
}

func TestClient_Do_ErrorStatus(t *testing.T) {
	client, srv := newClient(t)
	srv.FailWith(http.StatusInternalServerError)

	out, err := client.GetWorkflow(context.Background(), "1")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "Internal Server Error")

	var apiErr *n8n.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.EqualValues(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Len(t, srv.Requests(), 1, "no retry expected")
}

func TestClient_ListWorkflows(t *testing.T) {
	testCases := []struct {
		name   string
		params *n8n.ListWorkflowsParams
		expect map[string]string
		absent []string
	}{
		{
			name:   "no filters",
			params: &n8n.ListWorkflowsParams{},
			absent: []string{"active", "tags", "limit", "cursor"},
		},
		{
			name:   "nil params",
			absent: []string{"active", "tags", "limit", "cursor"},
		},
		{
			name:   "false and zero are sent",
			params: &n8n.ListWorkflowsParams{Active: conv.Pointer(false), Limit: conv.Pointer(0)},
			expect: map[string]string{"active": "false", "limit": "0"},
			absent: []string{"tags", "cursor"},
		},
		{
			name:   "limit above max is clamped",
			params: &n8n.ListWorkflowsParams{Limit: conv.Pointer(100), Tags: conv.Pointer("a,b"), Cursor: conv.Pointer("c1")},
			expect: map[string]string{"limit": "25", "tags": "a,b", "cursor": "c1"},
			absent: []string{"active"},
		},
		{
			name:   "limit at max passes through",
			params: &n8n.ListWorkflowsParams{Limit: conv.Pointer(25)},
			expect: map[string]string{"limit": "25"},
		},
		{
			name:   "limit below max passes through",
			params: &n8n.ListWorkflowsParams{Limit: conv.Pointer(3)},
			expect: map[string]string{"limit": "3"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, srv := newClient(t)
			out, err := client.ListWorkflows(context.Background(), tc.params)
			require.NoError(t, err)
			assert.True(t, json.Valid(out))

			last := srv.Last()
			assert.EqualValues(t, "/api/v1/workflows", last.Path)
			for k, v := range tc.expect {
				assert.EqualValues(t, v, last.Query.Get(k), k)
			}
			for _, k := range tc.absent {
				_, ok := last.Query[k]
				assert.False(t, ok, "unexpected query parameter %s", k)
			}
		})
	}
}

func TestClient_GetWorkflow_NoCaching(t *testing.T) {
	client, srv := newClient(t)
	ctx := context.Background()

	first, err := client.GetWorkflow(ctx, "9")
	require.NoError(t, err)
	second, err := client.GetWorkflow(ctx, "9")
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
	requests := srv.Requests()
	require.Len(t, requests, 2)
	for _, r := range requests {
		assert.EqualValues(t, "/api/v1/workflows/9", r.Path)
	}
}

func TestClient_CreateThenUpdateWorkflow(t *testing.T) {
	client, srv := newClient(t)
	ctx := context.Background()

	created, err := client.CreateWorkflow(ctx, &n8n.WorkflowCreate{Name: "A", Nodes: []n8n.Node{}, Connections: n8n.Connections{}})
	require.NoError(t, err)
	assert.EqualValues(t, "100", created.ID)
	assert.EqualValues(t, "A", created.Name)
	assert.EqualValues(t, map[string]interface{}{"name": "A", "nodes": []interface{}{}, "connections": map[string]interface{}{}}, srv.Last().Body)

	updated, err := client.UpdateWorkflow(ctx, created.ID, &n8n.WorkflowUpdate{Name: conv.Pointer("B")})
	require.NoError(t, err)
	assert.EqualValues(t, "B", updated.Name)

	last := srv.Last()
	assert.EqualValues(t, http.MethodPut, last.Method)
	assert.EqualValues(t, "/api/v1/workflows/100", last.Path)
	assert.EqualValues(t, map[string]interface{}{"name": "B"}, last.Body)
}

func TestClient_ActivateWorkflow(t *testing.T) {
	client, srv := newClient(t)
	ctx := context.Background()

	wf, err := client.ActivateWorkflow(ctx, "42", true)
	require.NoError(t, err)
	assert.True(t, wf.Active)
	assert.EqualValues(t, "/api/v1/workflows/42/activate", srv.Last().Path)

	wf, err = client.ActivateWorkflow(ctx, "42", false)
	require.NoError(t, err)
	assert.False(t, wf.Active)
	assert.EqualValues(t, "/api/v1/workflows/42/deactivate", srv.Last().Path)
}

func TestClient_ListExecutions(t *testing.T) {
	client, srv := newClient(t)
	ctx := context.Background()

	_, err := client.ListExecutions(ctx, &n8n.ListExecutionsParams{WorkflowID: "3"})
	require.NoError(t, err)
	last := srv.Last()
	assert.EqualValues(t, "/api/v1/executions", last.Path)
	assert.EqualValues(t, "3", last.Query.Get("workflowId"))
	for _, k := range []string{"includeData", "status", "limit", "cursor"} {
		_, ok := last.Query[k]
		assert.False(t, ok, "unexpected query parameter %s", k)
	}

	status := n8n.ExecutionStatusWaiting
	_, err = client.ListExecutions(ctx, &n8n.ListExecutionsParams{
		WorkflowID:  "3",
		IncludeData: conv.Pointer(true),
		Status:      &status,
		Limit:       conv.Pointer(26),
		Cursor:      conv.Pointer("xyz"),
	})
	require.NoError(t, err)
	last = srv.Last()
	assert.EqualValues(t, "true", last.Query.Get("includeData"))
	assert.EqualValues(t, "waiting", last.Query.Get("status"))
	assert.EqualValues(t, "25", last.Query.Get("limit"))
	assert.EqualValues(t, "xyz", last.Query.Get("cursor"))
}

func TestClient_Credentials(t *testing.T) {
	client, srv := newClient(t)
	ctx := context.Background()

	cred, err := client.CreateCredential(ctx, &n8n.CredentialCreate{Name: "gh", Type: "githubApi", Data: map[string]interface{}{"accessToken": "t"}})
	require.NoError(t, err)
	assert.EqualValues(t, "5", cred.ID)
	assert.EqualValues(t, "gh", cred.Name)
	assert.EqualValues(t, http.MethodPost, srv.Last().Method)
	assert.EqualValues(t, "githubApi", srv.Last().Body["type"])

	schema, err := client.GetCredentialSchema(ctx, "githubApi")
	require.NoError(t, err)
	assert.EqualValues(t, "/api/v1/credentials/schema/githubApi", srv.Last().Path)
	assert.Contains(t, string(schema), `"required":["token"]`)
}

func TestClampLimit(t *testing.T) {
	assert.EqualValues(t, 25, n8n.ClampLimit(1000))
	assert.EqualValues(t, 25, n8n.ClampLimit(26))
	assert.EqualValues(t, 25, n8n.ClampLimit(25))
	assert.EqualValues(t, 1, n8n.ClampLimit(1))
	assert.EqualValues(t, 0, n8n.ClampLimit(0))
}
