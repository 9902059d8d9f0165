// Package protocol translates between JSON-RPC 2.0 text and structured
// requests and responses.
//
// The codec does not interpret method semantics beyond requiring a method to
// be present; routing happens in the mcp package. No I/O is performed here.
//
// Example usage:
//
//	req, err := protocol.ParseRequest(line)
//	if err != nil {
//	    // *errors.ParseError or *errors.ProtocolError
//	}
//
//	out, err := protocol.BuildResponse(req.ID, map[string]any{"ok": true})
package protocol
