package main

import (
	"os"

	"github.com/viant/n8n-mcp/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
