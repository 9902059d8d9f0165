package validation

import (
	"encoding/json"
	stderrors "errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wagiedev/mcp-server-go/internal/errors"
	"github.com/wagiedev/mcp-server-go/internal/registry"
)

func greetTool() registry.ToolDefinition {
	return registry.ToolDefinition{
		Name:        "greet",
		Description: "Greet a user",
		Parameters: []registry.ToolParam{
			registry.Param("name", registry.ParamTypeString, ""),
			registry.Param("age", registry.ParamTypeInteger, ""),
			registry.OptionalParam("verbose", registry.ParamTypeBoolean, ""),
		},
	}
}

func calcTool() registry.ToolDefinition {
	return registry.ToolDefinition{
		Name:        "calc",
		Description: "Calculate",
		Parameters: []registry.ToolParam{
			registry.Param("value", registry.ParamTypeNumber, ""),
		},
	}
}

func TestValidateCall_Valid(t *testing.T) {
	v := New()

	require.Empty(t, v.ValidateCall(greetTool(), map[string]any{"name": "Alice", "age": 30}))
	require.Empty(t, v.ValidateCall(greetTool(), map[string]any{"name": "Alice", "age": 25, "verbose": true}))
}

func TestValidateCall_MissingRequired(t *testing.T) {
	problems := New().ValidateCall(greetTool(), map[string]any{"name": "Alice"})

	require.Equal(t, []string{"Missing required parameter: age"}, problems)
}

func TestValidateCall_UnknownParam(t *testing.T) {
	problems := New().ValidateCall(greetTool(), map[string]any{"name": "Alice", "age": 30, "color": "blue"})

	require.Equal(t, []string{"Unknown parameter: color"}, problems)
}

func TestValidateCall_WrongTypes(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{
			name: "string given int",
			args: map[string]any{"name": 123, "age": 30},
			want: "Parameter 'name' expected string, got integer",
		},
		{
			name: "integer given string",
			args: map[string]any{"name": "Alice", "age": "thirty"},
			want: "Parameter 'age' expected integer, got string",
		},
		{
			name: "integer given bool",
			args: map[string]any{"name": "Alice", "age": true},
			want: "Parameter 'age' expected integer, got boolean",
		},
		{
			name: "integer given fraction",
			args: map[string]any{"name": "Alice", "age": 30.5},
			want: "Parameter 'age' expected integer, got number",
		},
		{
			name: "boolean given string",
			args: map[string]any{"name": "Alice", "age": 30, "verbose": "yes"},
			want: "Parameter 'verbose' expected boolean, got string",
		},
		{
			name: "string given null",
			args: map[string]any{"name": nil, "age": 30},
			want: "Parameter 'name' expected string, got null",
		},
		{
			name: "string given object",
			args: map[string]any{"name": map[string]any{"first": "A"}, "age": 30},
			want: "Parameter 'name' expected string, got object",
		},
		{
			name: "string given array",
			args: map[string]any{"name": []any{"A"}, "age": 30},
			want: "Parameter 'name' expected string, got array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, []string{tt.want}, New().ValidateCall(greetTool(), tt.args))
		})
	}
}

func TestValidateCall_BoolNeverNumeric(t *testing.T) {
	v := New()

	problems := v.ValidateCall(calcTool(), map[string]any{"value": true})
	require.Equal(t, []string{"Parameter 'value' expected number, got boolean"}, problems)

	problems = v.ValidateCall(calcTool(), map[string]any{"value": false})
	require.Len(t, problems, 1)
}

func TestValidateCall_NumberAcceptsIntAndFloat(t *testing.T) {
	v := New()

	for _, value := range []any{42, 3.14, int64(-7), float32(2.5), json.Number("42"), json.Number("3.14")} {
		require.Empty(t, v.ValidateCall(calcTool(), map[string]any{"value": value}), "value %v", value)
	}
}

func TestValidateCall_IntegerFromJSON(t *testing.T) {
	v := New()

	// Standard decoding yields float64 for every number.
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Alice","age":30}`), &decoded))
	require.Empty(t, v.ValidateCall(greetTool(), decoded))

	require.Empty(t, v.ValidateCall(greetTool(), map[string]any{"name": "A", "age": json.Number("30")}))
	require.Len(t, v.ValidateCall(greetTool(), map[string]any{"name": "A", "age": json.Number("30.5")}), 1)

	for _, literal := range []string{"3.0", "3e0", "30E-1"} {
		require.Equal(t,
			[]string{"Parameter 'age' expected integer, got number"},
			v.ValidateCall(greetTool(), map[string]any{"name": "A", "age": json.Number(literal)}),
			literal)
	}

	require.Empty(t, v.ValidateCall(calcTool(), map[string]any{"value": json.Number("3.0")}))
	require.Empty(t, v.ValidateCall(greetTool(), map[string]any{"name": "A", "age": json.Number("-7")}))
}

func TestValidateCall_MultipleErrors(t *testing.T) {
	problems := New().ValidateCall(greetTool(), map[string]any{"name": 999})

	require.Len(t, problems, 2)
	require.Contains(t, problems, "Missing required parameter: age")
	require.Contains(t, problems, "Parameter 'name' expected string, got integer")
}

func TestValidateCall_MissingAndUnknownTogether(t *testing.T) {
	problems := New().ValidateCall(greetTool(), map[string]any{"name": "A", "zeta": 1, "alpha": 2})

	require.Equal(t, []string{
		"Missing required parameter: age",
		"Unknown parameter: alpha",
		"Unknown parameter: zeta",
	}, problems)
}

func TestValidateCall_NilArguments(t *testing.T) {
	problems := New().ValidateCall(greetTool(), nil)

	require.Equal(t, []string{
		"Missing required parameter: name",
		"Missing required parameter: age",
	}, problems)
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(greetTool(), map[string]any{"name": "Alice", "age": 30}))

	err := v.Validate(greetTool(), map[string]any{})
	require.Error(t, err)

	validationErr, ok := stderrors.AsType[*errors.ValidationError](err)
	require.True(t, ok)
	require.Equal(t, "greet", validationErr.Tool)
	require.Len(t, validationErr.Problems, 2)
}

func TestKindOf(t *testing.T) {
	type label string

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: "null"},
		{name: "string", value: "x", want: "string"},
		{name: "named string", value: label("x"), want: "string"},
		{name: "bool", value: true, want: "boolean"},
		{name: "int", value: 1, want: "integer"},
		{name: "uint8", value: uint8(1), want: "integer"},
		{name: "whole float", value: 2.0, want: "integer"},
		{name: "fraction", value: 2.5, want: "number"},
		{name: "infinity", value: math.Inf(1), want: "number"},
		{name: "json integer", value: json.Number("10"), want: "integer"},
		{name: "json exponent", value: json.Number("1e3"), want: "number"},
		{name: "json whole fraction", value: json.Number("3.0"), want: "number"},
		{name: "json fraction", value: json.Number("0.5"), want: "number"},
		{name: "slice", value: []any{1}, want: "array"},
		{name: "typed slice", value: []string{"a"}, want: "array"},
		{name: "map", value: map[string]any{}, want: "object"},
		{name: "struct", value: struct{}{}, want: "object"},
		{name: "nil pointer", value: (*int)(nil), want: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.value))
		})
	}
}

func TestCheckType_UnknownType(t *testing.T) {
	require.False(t, CheckType("x", registry.ToolParamType("array")))
}
