// Package mcp exposes n8n workflow automation operations as MCP tools.  Its
// central Service type validates configuration, builds the n8n API client,
// dispatches tool calls and serves placeholder note resources over an MCP
// server.
package mcp
