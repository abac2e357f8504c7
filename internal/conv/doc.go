// Package conv provides small conversion helpers shared by tool handlers:
// pointer helpers, weakly typed decoding of argument bags into request
// structs and JSON text rendering of results.
package conv
