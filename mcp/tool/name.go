package tool

import (
	"strings"
	"unicode"
)

// Name represents tool name
type Name string

const (
	ListWorkflows       Name = "list_workflows"
	GetWorkflow         Name = "get_workflow"
	CreateWorkflow      Name = "create_workflow"
	UpdateWorkflow      Name = "update_workflow"
	GetExecutions       Name = "get_executions"
	ActivateWorkflow    Name = "activate_workflow"
	CreateCredential    Name = "create_credential"
	GetCredentialSchema Name = "get_credential_schema"
)

func (t Name) String() string {
	return string(t)
}

// Canonical converts CLI friendly spellings (get-workflow, getWorkflow,
// n8n/get.workflow) into the registered snake_case tool name.
func Canonical(name string) string {
	var b strings.Builder
	prev := rune(0)
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == '-' || r == '.' || r == '/' || r == ' ':
			r = '_'
		case unicode.IsUpper(r):
			if prev != 0 && prev != '_' && !unicode.IsUpper(prev) {
				b.WriteRune('_')
			}
			r = unicode.ToLower(r)
		}
		if r == '_' && (prev == '_' || prev == 0) {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return strings.TrimSuffix(b.String(), "_")
}
