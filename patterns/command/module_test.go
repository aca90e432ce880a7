package command

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestInvoker_ExecuteAndUndo(t *testing.T) {
	t.Parallel()

	light := &Light{}
	invoker := &Invoker{}

	invoker.Run(SwitchOn{light: light})
	require.Equal(t, "on", light.State())

	invoker.Run(SwitchOff{light: light})
	require.Equal(t, "off", light.State())

	undo, ok := invoker.UndoLast()
	require.True(t, ok)
	require.Equal(t, "undone: switch off", undo)
	require.Equal(t, "on", light.State())
}

func TestInvoker_UndoOnEmptyHistory(t *testing.T) {
	t.Parallel()

	invoker := &Invoker{}
	_, ok := invoker.UndoLast()
	require.False(t, ok)
}

func TestOnRunCommand_DeterministicScript(t *testing.T) {
	t.Parallel()

	want := []string{
		"light starts off",
		"executed: switch on",
		"executed: switch off",
		"light is now off",
		"undone: switch off",
		"after undo the light is on",
	}

	lines, err := OnRunCommand(context.Background(), &Input{})
	require.NoError(t, err)
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("command script mismatch (-want +got):\n%s", diff)
	}
}
