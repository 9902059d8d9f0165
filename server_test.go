package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newCalculator(opts ...Option) *Server {
	type operands struct {
		A float64 `json:"a"`
		B float64 `json:"b"`
	}

	server := New("calculator", opts...)
	server.AddTool("add", "Add two numbers", []ToolParam{
		Param("a", ParamTypeNumber, "First operand"),
		Param("b", ParamTypeNumber, "Second operand"),
	}, Bind(func(_ context.Context, in operands) (any, error) {
		return in.A + in.B, nil
	}))

	return server
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	server := New("demo",
		WithVersion("3.1.4"),
		WithLogger(NopLogger()),
		WithInstructions("Be brief."),
		WithValidationMode(ValidationStrict),
	)

	require.Equal(t, "demo", server.Name())
	require.Equal(t, "3.1.4", server.Version())

	defaults := New("demo")
	require.Equal(t, "1.0.0", defaults.Version())
	require.NotNil(t, defaults.Logger())
}

func TestServe_Session(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	server := newCalculator(WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"add","arguments":{"a":2,"b":3}}}`,
		`not json`,
	}, "\n")

	var out bytes.Buffer

	require.NoError(t, Serve(context.Background(), server, strings.NewReader(in), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)

	var initialize struct {
		ID     int `json:"id"`
		Result struct {
			ProtocolVersion string `json:"protocolVersion"`
			ServerInfo      struct {
				Name string `json:"name"`
			} `json:"serverInfo"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &initialize))
	require.Equal(t, 1, initialize.ID)
	require.Equal(t, ProtocolVersion, initialize.Result.ProtocolVersion)
	require.Equal(t, "calculator", initialize.Result.ServerInfo.Name)

	require.Contains(t, lines[1], `"name":"add"`)
	require.JSONEq(t,
		`{"jsonrpc":"2.0","id":3,"result":{"content":[{"type":"text","text":"5"}],"isError":false}}`,
		lines[2])

	var parseFailure struct {
		ID    any `json:"id"`
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &parseFailure))
	require.Nil(t, parseFailure.ID)
	require.Equal(t, CodeParseError, parseFailure.Error.Code)
	require.True(t, strings.HasPrefix(parseFailure.Error.Message, "invalid JSON: "))

	require.Contains(t, logs.String(), "component=stdio_transport")
	require.Contains(t, logs.String(), "component=mcp_server")
}

func TestBuildResponse_RoundTrip(t *testing.T) {
	t.Parallel()

	out, err := BuildResponse(1, map[string]any{"ok": true})
	require.NoError(t, err)
	require.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":{"ok":true}}`, out)

	out, err = BuildError("abc", CodeMethodNotFound, "Method not found: x")
	require.NoError(t, err)
	require.JSONEq(t, `{"jsonrpc":"2.0","id":"abc","error":{"code":-32601,"message":"Method not found: x"}}`, out)
}

func TestStringify_ToolResults(t *testing.T) {
	t.Parallel()

	require.Equal(t, "5", Stringify(5))
	require.Equal(t, `{"sum":5}`, Stringify(map[string]int{"sum": 5}))
}
