package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/wagiedev/mcp-server-go/internal/errors"
)

// Version is the JSON-RPC protocol version emitted in every response.
const Version = "2.0"

// Request is a decoded JSON-RPC request.
//
// Wire format:
//
//	{
//	  "jsonrpc": "2.0",
//	  "id": 1,
//	  "method": "tools/call",
//	  "params": {"name": "add", "arguments": {"a": 2, "b": 3}}
//	}
//
// The id and params members are kept as raw JSON and passed through untouched.
type Request struct {
	// JSONRPC is the declared protocol version. It is not validated.
	JSONRPC string

	// ID is the raw request id. It is nil when the member is absent and
	// encodes as null in that case.
	ID json.RawMessage

	// Method names the operation being invoked.
	Method string

	// Params holds the raw params member, if any.
	Params json.RawMessage

	hasID bool
}

// IsNotification reports whether the request carries no id member.
// JSON-RPC notifications must not be answered.
func (r *Request) IsNotification() bool {
	return !r.hasID
}

// HasParams reports whether the request carries a non-null params member.
func (r *Request) HasParams() bool {
	return len(r.Params) > 0 && !isNull(r.Params)
}

// DecodeParams decodes the params member into v.
//
// Numbers are decoded as json.Number so integral and fractional values stay
// distinguishable for argument validation.
func (r *Request) DecodeParams(v any) error {
	if !r.HasParams() {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(r.Params))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode params: %w", err)
	}

	return nil
}

// Response is a successful JSON-RPC response envelope.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Result  any    `json:"result"`
}

// ErrorResponse is a failed JSON-RPC response envelope.
type ErrorResponse struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Error   Error  `json:"error"`
}

// Error is the error member of an ErrorResponse.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewError creates an Error with the given code and message.
func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// ParseRequest decodes raw request text.
//
// Text that is not well-formed JSON yields a *errors.ParseError. Well-formed
// JSON that is not an object, or an object without a string "method" member,
// yields a *errors.ProtocolError. Neither the jsonrpc version nor the shape of
// the id is checked.
func ParseRequest(raw string) (*Request, error) {
	data := []byte(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		if !json.Valid(data) {
			return nil, &errors.ParseError{Err: err}
		}

		return nil, &errors.ProtocolError{Err: errors.ErrNotAnObject}
	}

	if fields == nil {
		return nil, &errors.ProtocolError{Err: errors.ErrNotAnObject}
	}

	rawMethod, ok := fields["method"]
	if !ok {
		return nil, &errors.ProtocolError{Err: errors.ErrMissingMethod}
	}

	var method string
	if isNull(rawMethod) || json.Unmarshal(rawMethod, &method) != nil {
		return nil, &errors.ProtocolError{Err: errors.ErrInvalidMethod}
	}

	req := &Request{
		Method: method,
		Params: fields["params"],
	}

	// The version is informational only; a non-string value is ignored.
	if rawVersion, ok := fields["jsonrpc"]; ok {
		_ = json.Unmarshal(rawVersion, &req.JSONRPC)
	}

	if rawID, ok := fields["id"]; ok {
		req.ID = rawID
		req.hasID = true
	}

	return req, nil
}

// BuildResponse encodes a success response:
//
//	{"jsonrpc":"2.0","id":<id>,"result":<result>}
func BuildResponse(id any, result any) (string, error) {
	data, err := json.Marshal(Response{
		JSONRPC: Version,
		ID:      id,
		Result:  result,
	})
	if err != nil {
		return "", fmt.Errorf("marshal response: %w", err)
	}

	return string(data), nil
}

// BuildError encodes an error response:
//
//	{"jsonrpc":"2.0","id":<id>,"error":{"code":<code>,"message":<message>}}
func BuildError(id any, code int, message string) (string, error) {
	data, err := json.Marshal(ErrorResponse{
		JSONRPC: Version,
		ID:      id,
		Error: Error{
			Code:    code,
			Message: message,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal error response: %w", err)
	}

	return string(data), nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
