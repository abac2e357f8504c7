// Package tool declares the n8n tools exposed over MCP: their names, static
// input schemas and the typed requests built from incoming argument bags.
package tool
