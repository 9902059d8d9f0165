package errors

import (
	"errors"
	"fmt"
	"strings"
)

// JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// MCPError is the base interface for protocol-level errors.
// Code reports the JSON-RPC error code the failure is surfaced with.
type MCPError interface {
	error
	Code() int
}

// Compile-time verification that all protocol error types implement MCPError.
var (
	_ MCPError = (*ParseError)(nil)
	_ MCPError = (*ProtocolError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrMissingMethod indicates a request object without a "method" member.
	ErrMissingMethod = errors.New("missing 'method' field")

	// ErrInvalidMethod indicates a "method" member that is not a string.
	ErrInvalidMethod = errors.New("invalid 'method' field")

	// ErrNotAnObject indicates a well-formed JSON value that is not an object.
	ErrNotAnObject = errors.New("request is not a JSON object")

	// ErrUnknownTool indicates no tool is registered under the requested name.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrResourceNotFound indicates no resource is registered under the requested URI.
	ErrResourceNotFound = errors.New("resource not found")
)

// ParseError indicates the raw request text is not well-formed JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Code implements MCPError.
func (e *ParseError) Code() int { return CodeParseError }

// ProtocolError indicates well-formed JSON that is not a usable JSON-RPC request.
type ProtocolError struct {
	Err error
}

func (e *ProtocolError) Error() string {
	return e.Err.Error()
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// Code implements MCPError.
func (e *ProtocolError) Code() int { return CodeInvalidRequest }

// ValidationError aggregates every problem found with a tool call's arguments.
type ValidationError struct {
	Tool     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: %s", e.Tool, strings.Join(e.Problems, "; "))
}

// HandlerPanicError wraps a value recovered from a panicking tool handler.
type HandlerPanicError struct {
	Tool  string
	Value any
}

func (e *HandlerPanicError) Error() string {
	return fmt.Sprintf("tool %q panicked: %v", e.Tool, e.Value)
}

// Unwrap returns the recovered value when it is itself an error.
func (e *HandlerPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}
