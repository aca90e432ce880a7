package suite

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// extractBodyAttributes evaluates every attribute of an arguments block into
// a static cty value. Suite files are plain data, so expressions must not
// reference variables or functions.
func extractBodyAttributes(block *argumentsBlock) (map[string]cty.Value, error) {
	if block == nil || block.Body == nil {
		return nil, nil
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid arguments block: %w", diags)
	}
	if len(attrs) == 0 {
		return nil, nil
	}

	values := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("argument %q must be a static value: %w", name, diags)
		}
		values[name] = val
	}
	return values, nil
}

// DecodeArguments populates the exported, `pl`-tagged fields of inputStruct
// from the given argument values. Fields without a matching argument keep
// their zero (or pre-set default) value; arguments without a matching field
// are an error, so typos in suite files fail loudly.
func DecodeArguments(args map[string]cty.Value, inputStruct any) error {
	if len(args) == 0 {
		return nil
	}

	structVal := reflect.ValueOf(inputStruct)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() {
		return fmt.Errorf("inputStruct must be a non-nil pointer")
	}
	structVal = structVal.Elem()
	structType := structVal.Type()

	fields := make(map[string]reflect.Value)
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldVal := structVal.Field(i)
		if !field.IsExported() || !fieldVal.CanSet() {
			continue
		}

		tagName := strings.Split(field.Tag.Get("pl"), ",")[0]
		if tagName == "" || tagName == "-" {
			continue
		}
		fields[tagName] = fieldVal
	}

	for name, val := range args {
		fieldVal, ok := fields[name]
		if !ok {
			return fmt.Errorf("unknown argument %q", name)
		}
		if err := decodeValue(val, fieldVal); err != nil {
			return fmt.Errorf("in argument %q: %w", name, err)
		}
	}
	return nil
}

// decodeValue converts a single cty value into the Go field, via the field's
// implied cty type.
func decodeValue(val cty.Value, fieldVal reflect.Value) error {
	if val.IsNull() || !val.IsKnown() {
		return nil
	}

	want, err := gocty.ImpliedType(fieldVal.Interface())
	if err != nil {
		return fmt.Errorf("unsupported target type %s: %w", fieldVal.Type(), err)
	}

	converted, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s: %w", val.Type().FriendlyName(), want.FriendlyName(), err)
	}

	return gocty.FromCtyValue(converted, fieldVal.Addr().Interface())
}
