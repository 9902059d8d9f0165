// Package validation checks tool call arguments against a tool's declared
// parameters before invocation.
//
// Every independent problem is reported, not just the first. Whether a
// non-empty result blocks invocation is decided by the dispatcher.
package validation
