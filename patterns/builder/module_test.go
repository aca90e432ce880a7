package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_AssemblesImmutablePizza(t *testing.T) {
	t.Parallel()

	pizza, err := NewBuilder().Size("large").Cheese().Pepperoni().Build()
	require.NoError(t, err)
	require.Equal(t, "large pizza with cheese and pepperoni", pizza.Describe())
}

func TestBuilder_PlainPizza(t *testing.T) {
	t.Parallel()

	pizza, err := NewBuilder().Build()
	require.NoError(t, err)
	require.Equal(t, "medium pizza, plain", pizza.Describe())
}

func TestBuilder_SecondBuildFails(t *testing.T) {
	t.Parallel()

	b := NewBuilder().Cheese()
	_, err := b.Build()
	require.NoError(t, err)

	_, err = b.Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "already finalized")
}

func TestOnRunBuilder(t *testing.T) {
	t.Parallel()

	lines, err := OnRunBuilder(context.Background(), &Input{Size: "small", Cheese: true})
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	require.Contains(t, lines[len(lines)-2], "small pizza with cheese")
	require.Contains(t, lines[len(lines)-1], "second build rejected")
}
