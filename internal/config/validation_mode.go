package config

import "fmt"

// ValidationMode controls how argument validation affects a tool call.
type ValidationMode string

const (
	// ValidationAdvisory validates and logs problems but still invokes the handler.
	ValidationAdvisory ValidationMode = "advisory"
	// ValidationStrict rejects the call without invoking the handler when
	// any problem is found.
	ValidationStrict ValidationMode = "strict"
	// ValidationOff skips validation entirely.
	ValidationOff ValidationMode = "off"
)

// ParseValidationMode maps a mode name to a ValidationMode.
// The empty string selects ValidationAdvisory.
func ParseValidationMode(s string) (ValidationMode, error) {
	switch ValidationMode(s) {
	case "", ValidationAdvisory:
		return ValidationAdvisory, nil
	case ValidationStrict:
		return ValidationStrict, nil
	case ValidationOff:
		return ValidationOff, nil
	default:
		return "", fmt.Errorf("invalid validation mode %q: must be one of advisory, strict, off", s)
	}
}
