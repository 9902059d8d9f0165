package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/wagiedev/mcp-server-go/internal/errors"
	"github.com/wagiedev/mcp-server-go/internal/registry"
)

// Validator checks call arguments against a tool definition.
// The zero value is ready to use.
type Validator struct{}

// New creates a Validator.
func New() *Validator {
	return &Validator{}
}

// ValidateCall returns one message per problem found; an empty result means
// the arguments are acceptable. Three passes run in order and each adds to
// the result independently:
//
//  1. required parameters absent from args
//  2. keys in args the tool does not declare
//  3. declared parameters whose value has the wrong type
func (v *Validator) ValidateCall(tool registry.ToolDefinition, args map[string]any) []string {
	var problems []string

	for _, p := range tool.Parameters {
		if _, ok := args[p.Name]; p.Required && !ok {
			problems = append(problems, "Missing required parameter: "+p.Name)
		}
	}

	unknown := make([]string, 0)

	for key := range args {
		if !tool.HasParam(key) {
			unknown = append(unknown, key)
		}
	}

	slices.Sort(unknown)

	for _, key := range unknown {
		problems = append(problems, "Unknown parameter: "+key)
	}

	for _, p := range tool.Parameters {
		value, ok := args[p.Name]
		if !ok {
			continue
		}

		if !CheckType(value, p.Type) {
			problems = append(problems,
				fmt.Sprintf("Parameter '%s' expected %s, got %s", p.Name, p.Type, KindOf(value)))
		}
	}

	return problems
}

// Validate is ValidateCall returning an error value. It returns nil when the
// arguments are acceptable and a *errors.ValidationError otherwise.
func (v *Validator) Validate(tool registry.ToolDefinition, args map[string]any) error {
	problems := v.ValidateCall(tool, args)
	if len(problems) == 0 {
		return nil
	}

	return &errors.ValidationError{
		Tool:     tool.Name,
		Problems: problems,
	}
}

// CheckType reports whether value is acceptable for typ.
//
// Booleans never satisfy integer or number even though a host representation
// might treat them as 0 and 1.
func CheckType(value any, typ registry.ToolParamType) bool {
	kind := KindOf(value)

	switch typ {
	case registry.ParamTypeString:
		return kind == kindString
	case registry.ParamTypeInteger:
		return kind == kindInteger
	case registry.ParamTypeBoolean:
		return kind == kindBoolean
	case registry.ParamTypeNumber:
		return kind == kindInteger || kind == kindNumber
	default:
		return false
	}
}

const (
	kindString  = "string"
	kindInteger = "integer"
	kindNumber  = "number"
	kindBoolean = "boolean"
	kindNull    = "null"
	kindArray   = "array"
	kindObject  = "object"
)

// KindOf names the JSON kind of a runtime value: string, integer, number,
// boolean, null, array or object. A json.Number is an integer only when its
// text has no fraction or exponent, so 3.0 is a number. A float64 without a
// fractional part is an integer.
func KindOf(value any) string {
	switch v := value.(type) {
	case nil:
		return kindNull
	case string:
		return kindString
	case bool:
		return kindBoolean
	case json.Number:
		return numberKind(v)
	case float64:
		return floatKind(v)
	case float32:
		return floatKind(float64(v))
	case []any:
		return kindArray
	case map[string]any:
		return kindObject
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.String:
		return kindString
	case reflect.Bool:
		return kindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindInteger
	case reflect.Float32, reflect.Float64:
		return floatKind(rv.Float())
	case reflect.Slice, reflect.Array:
		return kindArray
	case reflect.Map, reflect.Struct:
		return kindObject
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return kindNull
		}

		return KindOf(rv.Elem().Interface())
	default:
		return rv.Type().String()
	}
}

func floatKind(f float64) string {
	if !math.IsInf(f, 0) && !math.IsNaN(f) && math.Trunc(f) == f {
		return kindInteger
	}

	return kindNumber
}

// numberKind classifies a decoded JSON number by its literal text: a
// fraction or exponent makes it a number even when its value is whole.
func numberKind(n json.Number) string {
	if strings.ContainsAny(string(n), ".eE") {
		return kindNumber
	}

	return kindInteger
}
