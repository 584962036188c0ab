package cli

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

func executeRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := executeRoot(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "partsdesk v"+Version)
	assert.Contains(t, out, modulePath)
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := executeRoot(t, "", "--config-dir", dir, "--env-file", "", "list", "--search", "RYZEN")
	require.NoError(t, err)
	assert.Contains(t, out, "Ryzen 5 5600X")
	assert.Contains(t, out, "Total: 1 part(s)")
	assert.FileExists(t, filepath.Join(dir, configFileExt))
}

func TestOptionsCommandJSON(t *testing.T) {
	out, err := executeRoot(t, "", "--config-dir", t.TempDir(), "--env-file", "", "options", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"ConnecticutF"`)
	assert.Contains(t, out, `"MassachusettsG"`)
}

func TestShellCommand(t *testing.T) {
	script := "add\nset department Cashier\nset itemCode NewYorkH\nset partName RAM\nconfirm\nlist --search ram\n"

	out, err := executeRoot(t, script, "--config-dir", t.TempDir(), "--env-file", "", "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "PC part added successfully")
	assert.Contains(t, out, "Total: 1 part(s)")
}

func TestRootUnknownBackend(t *testing.T) {
	t.Setenv("PARTSDESK_BACKEND", "mongo")

	_, err := executeRoot(t, "", "--config-dir", t.TempDir(), "--env-file", "", "list")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: exitSuccess},
		{name: "backend empty", err: types.ErrBackendEmpty, want: exitUserError},
		{name: "wrapped not found", err: fmt.Errorf("get: %w", types.ErrNotFound), want: exitUserError},
		{name: "validation", err: &types.ValidationError{}, want: exitUserError},
		{name: "other", err: errors.New("disk on fire"), want: exitSysError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
