// Package n8n is a thin client for the n8n public REST API. Every operation
// shapes its query or body, forwards it through Client.Do and hands the JSON
// response back unchanged; the package keeps no state besides configuration.
package n8n
