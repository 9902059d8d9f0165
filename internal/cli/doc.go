// Package cli implements the mcp-starter command line: a cobra command tree
// whose settings are merged by viper from flags, MCP_STARTER_* environment
// variables and an optional config file.
package cli
