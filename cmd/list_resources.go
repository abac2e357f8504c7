package cmd

import (
	"fmt"

	"github.com/viant/n8n-mcp/internal/conv"
)

// ListResourcesCmd prints every note resource.
type ListResourcesCmd struct{}

func (c *ListResourcesCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	for _, r := range svc.Resources() {
		fmt.Printf("%s\t%s\t%s\n", r.Uri, r.Name, conv.Dereference(r.MimeType))
	}
	return nil
}
