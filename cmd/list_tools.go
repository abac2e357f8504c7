package cmd

import (
	"fmt"

	"github.com/viant/n8n-mcp/internal/conv"
)

// ListToolsCmd prints every registered tool, optionally filtered by pattern.
type ListToolsCmd struct {
	Args struct {
		Pattern string `positional-arg-name:"pattern" description:"name prefix or *"`
	} `positional-args:"yes"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	pattern := c.Args.Pattern
	if pattern == "" {
		pattern = "*"
	}
	for _, t := range svc.MatchTools(pattern) {
		fmt.Printf("%s\t%s\n", t.Metadata.Name, conv.Dereference(t.Metadata.Description))
	}
	return nil
}
