package suite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// writeSuiteFile writes an .hcl file into dir and returns its path.
func writeSuiteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_SingleFile(t *testing.T) {
	t.Parallel()

	path := writeSuiteFile(t, t.TempDir(), "main.hcl", `
suite {
  examples = ["singleton", "factory"]
}

example "factory" {
  arguments {
    kind = "cat"
  }
}
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	require.Equal(t, []string{"singleton", "factory"}, cfg.Examples)
	want := map[string]cty.Value{"kind": cty.StringVal("cat")}
	if diff := cmp.Diff(want, cfg.Arguments["factory"], cmp.Comparer(func(a, b cty.Value) bool {
		return a.RawEquals(b)
	})); diff != "" {
		t.Fatalf("factory arguments mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DirectoryMergesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSuiteFile(t, dir, "select.hcl", `
suite {
  examples = ["factory"]
}
`)
	writeSuiteFile(t, dir, "args.hcl", `
example "factory" {
  arguments {
    kind = "duck"
  }
}

example "strategy" {
  arguments {
    method = "paypal"
    amount = 5.50
  }
}
`)

	cfg, err := Load(context.Background(), dir)
	require.NoError(t, err)

	require.Equal(t, []string{"factory"}, cfg.Examples)
	require.Len(t, cfg.Arguments, 2)
	require.True(t, cfg.Arguments["factory"]["kind"].RawEquals(cty.StringVal("duck")))
	require.True(t, cfg.Arguments["strategy"]["method"].RawEquals(cty.StringVal("paypal")))
}

func TestLoad_EmptyDirectory(t *testing.T) {
	t.Parallel()

	cfg, err := Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.Empty(t, cfg.Examples)
	require.Empty(t, cfg.Arguments)
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}

func TestLoad_InvalidHCL(t *testing.T) {
	t.Parallel()

	path := writeSuiteFile(t, t.TempDir(), "broken.hcl", `
example "factory" {
  arguments {
`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_DuplicateExampleBlock(t *testing.T) {
	t.Parallel()

	path := writeSuiteFile(t, t.TempDir(), "dup.hcl", `
example "factory" {
  arguments {
    kind = "cat"
  }
}

example "factory" {
  arguments {
    kind = "dog"
  }
}
`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate example block")
}

func TestLoad_NonStaticArgument(t *testing.T) {
	t.Parallel()

	path := writeSuiteFile(t, t.TempDir(), "var.hcl", `
example "factory" {
  arguments {
    kind = var.kind
  }
}
`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "static value")
}
