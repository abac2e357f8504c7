// Package config defines the YAML configuration model of the n8n MCP server,
// its built-in defaults and the environment overlay applied at startup.
package config
