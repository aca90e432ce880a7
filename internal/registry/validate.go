package registry

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/patternlab/internal/ctxlog"
)

// Validate performs a strict consistency check over every registered example.
// It verifies that each handler carries a function, that NewInput produces a
// pointer, and that the produced value matches the declared InputType.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.order {
		ex := r.examples[name]

		if ex.Fn == nil {
			errs = append(errs, fmt.Sprintf("example '%s': no handler function registered", name))
			continue
		}

		if ex.NewInput == nil {
			if ex.InputType != nil {
				errs = append(errs, fmt.Sprintf("example '%s': InputType declared but NewInput is nil", name))
			}
			continue
		}

		input := ex.NewInput()
		inputVal := reflect.ValueOf(input)
		if inputVal.Kind() != reflect.Ptr || inputVal.IsNil() {
			errs = append(errs, fmt.Sprintf("example '%s': NewInput must return a non-nil pointer", name))
			continue
		}

		if ex.InputType == nil {
			errs = append(errs, fmt.Sprintf("example '%s': NewInput declared but InputType is nil", name))
			continue
		}

		if got := inputVal.Elem().Type(); got != ex.InputType {
			errs = append(errs, fmt.Sprintf("example '%s': NewInput produces %s, but InputType is %s", name, got, ex.InputType))
		}
	}

	if len(errs) > 0 {
		return errors.New("registry validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	logger.Debug("Registry validation passed.", "examples", len(r.order))
	return nil
}
