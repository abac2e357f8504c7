package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/viant/n8n-mcp/internal/conv"
	"github.com/viant/n8n-mcp/mcp/tool"
)

// ToolCmd prints metadata & input schema for a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	entry, err := svc.LookupTool(tool.Canonical(c.Name))
	if err != nil {
		return err
	}

	found := struct {
		Name        string      `json:"name"`
		Description string      `json:"description"`
		InputSchema interface{} `json:"inputSchema"`
	}{entry.Metadata.Name, conv.Dereference(entry.Metadata.Description), entry.Metadata.InputSchema}

	if c.JSON {
		data, _ := json.MarshalIndent(found, "", "  ")
		fmt.Println(string(data))
	} else {
		fmt.Printf("Name : %s\n", found.Name)
		fmt.Printf("Desc : %s\n", found.Description)
		js, _ := json.MarshalIndent(found.InputSchema, "", "  ")
		fmt.Printf("InputSchema:\n%s\n", string(js))
	}
	return nil
}
