package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harveym4n4lili/dailyflo/internal/app"
)

// execute runs the root command with the given args and captures stdout.
func execute(root *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")

	out, err := execute(root, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}

func TestNewRootCommand_Help(t *testing.T) {
	root := NewRootCommand(nil, "test")

	out, err := execute(root, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "Setup Commands:")
	assert.Contains(t, out, "Task Commands:")
	assert.Contains(t, out, "View Commands:")
	assert.Contains(t, out, "timeline")
	assert.Contains(t, out, "agenda")
}

func TestTUICommand_UsesLaunchFunc(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(_ *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test")
	_, err := execute(root, "tui")

	require.NoError(t, err)
	assert.True(t, called, "tui command should go through launchTUIFunc")
}

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{arg: "1", want: 1},
		{arg: "42", want: 42},
		{arg: "0", wantErr: true},
		{arg: "-3", wantErr: true},
		{arg: "abc", wantErr: true},
		{arg: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseTaskID(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
