package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAnimal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		kind      string
		wantName  string
		wantSound string
		expectErr bool
	}{
		{kind: "dog", wantName: "dog", wantSound: "Woof"},
		{kind: "cat", wantName: "cat", wantSound: "Meow"},
		{kind: "duck", wantName: "duck", wantSound: "Quack"},
		{kind: "tarantula", expectErr: true},
		{kind: "", expectErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.kind, func(t *testing.T) {
			t.Parallel()

			animal, err := NewAnimal(tc.kind)
			if tc.expectErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "Unknown type")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantName, animal.Name())
			require.Equal(t, tc.wantSound, animal.Speak())
		})
	}
}

func TestOnRunFactory_DefaultsToDog(t *testing.T) {
	t.Parallel()

	lines, err := OnRunFactory(context.Background(), &Input{})
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	require.Contains(t, lines[1], "Woof")
}

func TestOnRunFactory_UnknownKind(t *testing.T) {
	t.Parallel()

	lines, err := OnRunFactory(context.Background(), &Input{Kind: "tarantula"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unknown type: tarantula")
	require.Nil(t, lines, "a failed demonstration produces no partial output")
}
