package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"n8n MCP configuration YAML path or URL"`

	Serve         *ServeCmd         `command:"serve"          description:"Start MCP server (stdio by default)"`
	ListTools     *ListToolsCmd     `command:"list-tools"     description:"List all registered tools"`
	Tool          *ToolCmd          `command:"tool"           description:"Show detailed info about one MCP tool"`
	Exec          *ExecCmd          `command:"exec"           description:"Execute one tool against n8n"`
	ListResources *ListResourcesCmd `command:"list-resources" description:"List note resources"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "list-resources":
		o.ListResources = &ListResourcesCmd{}
	}
}
