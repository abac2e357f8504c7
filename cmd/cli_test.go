package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDefaultCommand(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		expect      []string
	}{
		{description: "no args", args: nil, expect: []string{"serve"}},
		{description: "config only", args: []string{"-f", "cfg.yaml"}, expect: []string{"-f", "cfg.yaml", "serve"}},
		{description: "explicit command", args: []string{"list-tools", "get*"}, expect: []string{"list-tools", "get*"}},
		{description: "config then command", args: []string{"--config", "cfg.yaml", "exec", "-n", "get_workflow"}, expect: []string{"--config", "cfg.yaml", "exec", "-n", "get_workflow"}},
	}
	for _, tc := range testCases {
		assert.EqualValues(t, tc.expect, withDefaultCommand(tc.args), tc.description)
	}
}

func TestFirstCommand(t *testing.T) {
	assert.EqualValues(t, "", firstCommand(nil))
	assert.EqualValues(t, "", firstCommand([]string{"-f", "serve"}))
	assert.EqualValues(t, "tool", firstCommand([]string{"--config=x.yaml", "tool", "-n", "list_workflows"}))
	assert.EqualValues(t, "serve", firstCommand([]string{"-f", "x.yaml", "serve"}))
}

func TestExtractConfigPath(t *testing.T) {
	assert.EqualValues(t, "", extractConfigPath([]string{"serve"}))
	assert.EqualValues(t, "a.yaml", extractConfigPath([]string{"-f", "a.yaml", "serve"}))
	assert.EqualValues(t, "b.yaml", extractConfigPath([]string{"serve", "--config", "b.yaml"}))
	assert.EqualValues(t, "c.yaml", extractConfigPath([]string{"--config=c.yaml"}))
	assert.EqualValues(t, "", extractConfigPath([]string{"-f"}))
}

func TestParseLevel(t *testing.T) {
	assert.EqualValues(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.EqualValues(t, slog.LevelWarn, parseLevel("warning"))
	assert.EqualValues(t, slog.LevelError, parseLevel(" error "))
	assert.EqualValues(t, slog.LevelInfo, parseLevel(""))
	assert.EqualValues(t, slog.LevelInfo, parseLevel("verbose"))
}
