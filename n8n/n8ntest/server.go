// Package n8ntest provides an in-process fake of the n8n REST API for tests.
package n8ntest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/julienschmidt/httprouter"
)

// Request is one call recorded by the fake server.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   map[string]interface{}
}

// Server is a fake n8n API serving canned JSON under /api/v1.
type Server struct {
	*httptest.Server
	mu       sync.Mutex
	requests []Request
	status   int
}

// New starts a fake server; call Close when done.
func New() *Server {
	s := &Server{}
	router := httprouter.New()
	router.GET("/api/v1/workflows", s.handle(s.listWorkflows))
	router.POST("/api/v1/workflows", s.handle(s.createWorkflow))
	router.GET("/api/v1/workflows/:id", s.handle(s.getWorkflow))
	router.PUT("/api/v1/workflows/:id", s.handle(s.updateWorkflow))
	router.POST("/api/v1/workflows/:id/activate", s.handle(s.activation(true)))
	router.POST("/api/v1/workflows/:id/deactivate", s.handle(s.activation(false)))
	router.GET("/api/v1/executions", s.handle(s.listExecutions))
	router.POST("/api/v1/credentials", s.handle(s.createCredential))
	router.GET("/api/v1/credentials/schema/:type", s.handle(s.credentialSchema))
	s.Server = httptest.NewServer(router)
	return s
}

// FailWith makes every subsequent request answer with status.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Requests returns a copy of the recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request{}, s.requests...)
}

// Last returns the most recent request.
func (s *Server) Last() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

type handlerFunc func(params httprouter.Params, body map[string]interface{}) interface{}

func (s *Server) handle(fn handlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		var body map[string]interface{}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &body)
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		status := s.status
		s.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(fn(params, body))
	}
}

func (s *Server) listWorkflows(httprouter.Params, map[string]interface{}) interface{} {
	return map[string]interface{}{
		"data":       []interface{}{workflow("1", "First", true), workflow("2", "Second", false)},
		"nextCursor": nil,
	}
}

func (s *Server) getWorkflow(params httprouter.Params, _ map[string]interface{}) interface{} {
	return workflow(params.ByName("id"), "Workflow "+params.ByName("id"), false)
}

func (s *Server) createWorkflow(_ httprouter.Params, body map[string]interface{}) interface{} {
	ret := workflow("100", "", false)
	for k, v := range body {
		ret[k] = v
	}
	return ret
}

func (s *Server) updateWorkflow(params httprouter.Params, body map[string]interface{}) interface{} {
	ret := workflow(params.ByName("id"), "Workflow "+params.ByName("id"), false)
	for k, v := range body {
		ret[k] = v
	}
	return ret
}

func (s *Server) activation(active bool) handlerFunc {
	return func(params httprouter.Params, _ map[string]interface{}) interface{} {
		return workflow(params.ByName("id"), "Workflow "+params.ByName("id"), active)
	}
}

func (s *Server) listExecutions(httprouter.Params, map[string]interface{}) interface{} {
	return map[string]interface{}{
		"data": []interface{}{
			map[string]interface{}{"id": "7", "finished": true, "mode": "manual", "status": "success"},
		},
		"nextCursor": "next",
	}
}

func (s *Server) createCredential(_ httprouter.Params, body map[string]interface{}) interface{} {
	return map[string]interface{}{"id": "5", "name": body["name"], "type": body["type"]}
}

func (s *Server) credentialSchema(params httprouter.Params, _ map[string]interface{}) interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"token"},
		"properties": map[string]interface{}{
			"token": map[string]interface{}{"type": "string"},
		},
		"title": params.ByName("type"),
	}
}

func workflow(id, name string, active bool) map[string]interface{} {
	return map[string]interface{}{
		"id":          id,
		"name":        name,
		"active":      active,
		"nodes":       []interface{}{},
		"connections": map[string]interface{}{},
	}
}
