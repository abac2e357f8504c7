package cmd

import (
	"context"
	"os"
	"sync"

	"github.com/viant/n8n-mcp/mcp"
	mcpconfig "github.com/viant/n8n-mcp/mcp/config"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed
// first.
func setConfigPath(p string) { cfgPath = p }

// loadConfig resolves the effective configuration: built-in defaults, the
// optional config file, then the process environment.
func loadConfig(ctx context.Context) (*mcpconfig.Config, error) {
	cfg := mcpconfig.New()
	if cfgPath != "" {
		var err error
		if cfg, err = mcpconfig.Load(ctx, cfgPath); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// serviceSingleton initialises an mcp.Service only once and reuses the instance
// across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		cfg, err := loadConfig(ctx)
		if err != nil {
			svcErr = err
			return
		}
		logger := setupLogger(os.Stderr, cfg.LogLevel)
		svcInst, svcErr = mcp.New(ctx, mcp.WithConfig(cfg), mcp.WithLogger(logger))
	})
	return svcInst, svcErr
}
