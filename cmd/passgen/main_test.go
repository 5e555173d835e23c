package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"testing"

	"github.com/entrhq/passgen/pkg/clipboard"
	appconfig "github.com/entrhq/passgen/pkg/config"
	"github.com/entrhq/passgen/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("passgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	config := parseFlags(fs, []string{"-config", "/tmp/passgen.yaml", "-version"})

	assert.Equal(t, "/tmp/passgen.yaml", config.ConfigPath)
	assert.True(t, config.ShowVersion)
}

func TestParseFlags_Defaults(t *testing.T) {
	fs := flag.NewFlagSet("passgen", flag.ContinueOnError)
	config := parseFlags(fs, nil)

	assert.Empty(t, config.ConfigPath)
	assert.False(t, config.ShowVersion)
}

func TestNewClipboardWriter_TerminalMode(t *testing.T) {
	section := appconfig.NewClipboardSection()
	require.NoError(t, section.SetData(map[string]interface{}{
		"mode": "terminal",
		"tty":  "/nonexistent/passgen-tty",
	}))

	var logs bytes.Buffer
	w := newClipboardWriter(section, logging.New("clipboard", &logs, logging.LevelDebug))

	// The system clipboard is skipped and the unusable tty makes the fallback fail.
	assert.Equal(t, clipboard.Failed, w.Copy(context.Background(), "secret"))
	assert.Contains(t, logs.String(), "system clipboard unavailable, using fallback")
	assert.Contains(t, logs.String(), "fallback: unable to copy")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := t.TempDir() + "/config.yaml"
	require.NoError(t, os.WriteFile(path, []byte("generator:\n  length: 3\n"), 0600))

	err := run(context.Background(), &Config{ConfigPath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
