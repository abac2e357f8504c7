package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/mcp"
)

// ServeCmd launches an MCP server exposing the n8n tools and note resources.
// The stdio transport is used unless --http supplies a listen address.
type ServeCmd struct {
	HTTP string `long:"http" description:"serve over HTTP on the given address instead of stdio"`
}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	mcpServer, err := mcp.NewServer(svc.NewHandler, svc.Config().Server)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if c.HTTP == "" {
		slog.Info("serving MCP over stdio", "n8n", svc.Client().URL(""))
		return mcpServer.Stdio(ctx).ListenAndServe()
	}

	httpSrv := mcpServer.HTTP(ctx, c.HTTP)
	errs := make(chan error, 1)
	go func() {
		errs <- httpSrv.ListenAndServe()
	}()
	slog.Info("serving MCP over HTTP", "addr", httpSrv.Addr, "n8n", svc.Client().URL(""))

	// Wait for SIGINT/SIGTERM
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err = <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-sigs:
		slog.Info("shutting down")
		return httpSrv.Close()
	}
}
