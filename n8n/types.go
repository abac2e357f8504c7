package n8n

// MaxLimit caps page sizes sent to list endpoints.
const MaxLimit = 25

// Node is an opaque workflow node definition.
type Node map[string]interface{}

// Connections is the opaque connection graph keyed by source node name.
type Connections map[string]interface{}

// Workflow mirrors the workflow record returned by n8n.
type Workflow struct {
	ID          string                 `json:"id,omitempty"`
	Name        string                 `json:"name"`
	Active      bool                   `json:"active"`
	Nodes       []Node                 `json:"nodes"`
	Connections Connections            `json:"connections"`
	Settings    map[string]interface{} `json:"settings,omitempty"`
	CreatedAt   string                 `json:"createdAt,omitempty"`
	UpdatedAt   string                 `json:"updatedAt,omitempty"`
}

// ExecutionStatus filters execution history.
type ExecutionStatus string

const (
	ExecutionStatusError   ExecutionStatus = "error"
	ExecutionStatusSuccess ExecutionStatus = "success"
	ExecutionStatusWaiting ExecutionStatus = "waiting"
)

// ExecutionStatuses lists every accepted status filter.
var ExecutionStatuses = []ExecutionStatus{ExecutionStatusError, ExecutionStatusSuccess, ExecutionStatusWaiting}

// Credential mirrors the credential record returned on creation.
type Credential struct {
	ID        string                 `json:"id,omitempty"`
	Name      string                 `json:"name"`
	Type      string                 `json:"type"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt string                 `json:"createdAt,omitempty"`
	UpdatedAt string                 `json:"updatedAt,omitempty"`
}
