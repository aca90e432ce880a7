package runner

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/patternlab/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

type echoInput struct {
	Message string `pl:"message"`
}

// newTestRegistry builds a registry with one well-behaved example, one that
// echoes its argument, and one that always fails.
func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	r := registry.New()
	r.RegisterExample("steady", &registry.Example{
		NewInput:  func() any { return new(struct{}) },
		InputType: reflect.TypeOf(struct{}{}),
		Fn: func(ctx context.Context, input any) ([]string, error) {
			return []string{"line one", "line two"}, nil
		},
	})
	r.RegisterExample("echo", &registry.Example{
		NewInput:  func() any { return &echoInput{Message: "default"} },
		InputType: reflect.TypeOf(echoInput{}),
		Fn: func(ctx context.Context, input any) ([]string, error) {
			in := input.(*echoInput)
			return []string{in.Message}, nil
		},
	})
	r.RegisterExample("broken", &registry.Example{
		NewInput:  func() any { return new(struct{}) },
		InputType: reflect.TypeOf(struct{}{}),
		Fn: func(ctx context.Context, input any) ([]string, error) {
			return nil, fmt.Errorf("Unknown type: tarantula")
		},
	})
	require.NoError(t, r.Validate(context.Background()))
	return r
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	run := New(newTestRegistry(t), nil)

	report, err := run.Run(context.Background(), "steady")
	require.NoError(t, err)
	require.Equal(t, "steady", report.Name)
	if diff := cmp.Diff([]string{"line one", "line two"}, report.Lines); diff != "" {
		t.Fatalf("report lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()

	run := New(newTestRegistry(t), nil)

	first, err := run.Run(context.Background(), "steady")
	require.NoError(t, err)
	second, err := run.Run(context.Background(), "steady")
	require.NoError(t, err)

	if diff := cmp.Diff(first.Lines, second.Lines); diff != "" {
		t.Fatalf("two runs of the same example diverged (-first +second):\n%s", diff)
	}
}

func TestRun_NotFound(t *testing.T) {
	t.Parallel()

	run := New(newTestRegistry(t), nil)

	report, err := run.Run(context.Background(), "missing")
	require.Nil(t, report, "no partial output for an unknown name")
	require.Error(t, err)
	require.True(t, errors.Is(err, registry.ErrNotFound))
}

func TestRun_DemonstrationFailure(t *testing.T) {
	t.Parallel()

	run := New(newTestRegistry(t), nil)

	report, err := run.Run(context.Background(), "broken")
	require.Nil(t, report)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDemonstration), "failure should wrap ErrDemonstration")
	require.Contains(t, err.Error(), "Unknown type")
	require.False(t, errors.Is(err, registry.ErrNotFound))
}

func TestRun_DecodesSuiteArguments(t *testing.T) {
	t.Parallel()

	args := map[string]map[string]cty.Value{
		"echo": {"message": cty.StringVal("from the suite")},
	}
	run := New(newTestRegistry(t), args)

	report, err := run.Run(context.Background(), "echo")
	require.NoError(t, err)
	require.Equal(t, []string{"from the suite"}, report.Lines)
}

func TestRun_DefaultsWithoutSuiteArguments(t *testing.T) {
	t.Parallel()

	run := New(newTestRegistry(t), nil)

	report, err := run.Run(context.Background(), "echo")
	require.NoError(t, err)
	require.Equal(t, []string{"default"}, report.Lines)
}

func TestRun_BadSuiteArgument(t *testing.T) {
	t.Parallel()

	args := map[string]map[string]cty.Value{
		"echo": {"mesage": cty.StringVal("typo")},
	}
	run := New(newTestRegistry(t), args)

	_, err := run.Run(context.Background(), "echo")
	require.Error(t, err)
	require.Contains(t, err.Error(), "mesage")
}

func TestRunAll_CollectsFailuresWithoutAborting(t *testing.T) {
	t.Parallel()

	run := New(newTestRegistry(t), nil)

	reports, err := run.RunAll(context.Background(), nil)
	require.NoError(t, err, "run-all never fails outright")
	require.Len(t, reports, 3)

	byName := make(map[string]*Report, len(reports))
	var order []string
	for _, report := range reports {
		byName[report.Name] = report
		order = append(order, report.Name)
	}

	require.Equal(t, []string{"steady", "echo", "broken"}, order)
	require.NoError(t, byName["steady"].Err)
	require.NoError(t, byName["echo"].Err)
	require.Error(t, byName["broken"].Err)
	require.True(t, errors.Is(byName["broken"].Err, ErrDemonstration))
	require.Contains(t, byName["broken"].Err.Error(), "Unknown type")
	require.Empty(t, byName["broken"].Lines, "a failed example produces no partial output")
}

func TestRunAll_WithFilter(t *testing.T) {
	t.Parallel()

	run := New(newTestRegistry(t), nil)

	reports, err := run.RunAll(context.Background(), []string{"steady"})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, "steady", reports[0].Name)
}

func TestRunAll_UnknownFilterName(t *testing.T) {
	t.Parallel()

	run := New(newTestRegistry(t), nil)

	reports, err := run.RunAll(context.Background(), []string{"steady", "missing"})
	require.Nil(t, reports)
	require.Error(t, err)
	require.True(t, errors.Is(err, registry.ErrNotFound))
}
