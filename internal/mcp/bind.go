package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/wagiedev/mcp-server-go/internal/registry"
)

// Bind adapts a handler taking a typed argument struct to registry.Handler.
//
// The arguments map is decoded into T through JSON. Keys that match no field
// of T are rejected, and every field whose json tag lacks omitempty must be
// present. A failed decode is returned as the handler error, which the server
// reports as an error response.
//
// Example:
//
//	type addArgs struct {
//	    A float64 `json:"a"`
//	    B float64 `json:"b"`
//	}
//
//	server.AddTool("add", "Add two numbers", params, mcp.Bind(
//	    func(_ context.Context, in addArgs) (any, error) {
//	        return in.A + in.B, nil
//	    },
//	))
func Bind[T any](fn func(ctx context.Context, in T) (any, error)) registry.Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		var in T
		if err := BindArguments(args, &in); err != nil {
			return nil, err
		}

		return fn(ctx, in)
	}
}

// BindArguments decodes args into dst, which must be a non-nil pointer.
func BindArguments(args map[string]any, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("bind arguments: destination must be a non-nil pointer, got %T", dst)
	}

	if missing := missingFields(rv.Elem().Type(), args); len(missing) > 0 {
		return fmt.Errorf("missing required argument(s): %s", strings.Join(missing, ", "))
	}

	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("bind arguments: %w", err)
	}

	return nil
}

// missingFields lists the required fields of struct type t absent from args.
func missingFields(t reflect.Type, args map[string]any) []string {
	if t.Kind() != reflect.Struct {
		return nil
	}

	var missing []string

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}

		name, optional := jsonFieldName(field)
		if name == "" || optional {
			continue
		}

		if _, ok := args[name]; !ok {
			missing = append(missing, name)
		}
	}

	return missing
}

// jsonFieldName returns the JSON key of a struct field and whether the field
// is tagged omitempty. An empty name means the field is skipped by encoding/json.
func jsonFieldName(field reflect.StructField) (string, bool) {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name, false
	}

	name, opts, _ := strings.Cut(tag, ",")
	if name == "-" && opts == "" {
		return "", false
	}

	if name == "" {
		name = field.Name
	}

	optional := false

	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "omitempty" || opt == "omitzero" {
			optional = true
		}
	}

	return name, optional
}
