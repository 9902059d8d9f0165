package registry

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGetTool(t *testing.T) {
	r := New()
	r.RegisterTool(ToolDefinition{Name: "search", Description: "Search tool"})

	got, ok := r.GetTool("search")
	require.True(t, ok)
	require.Equal(t, "search", got.Name)
	require.Equal(t, "Search tool", got.Description)
}

func TestRegistry_RegisterAndGetResource(t *testing.T) {
	r := New()
	r.RegisterResource(Resource{URI: "file:///test.txt", Name: "Test"})

	got, ok := r.GetResource("file:///test.txt")
	require.True(t, ok)
	require.Equal(t, Resource{
		URI:      "file:///test.txt",
		Name:     "Test",
		MIMEType: DefaultMIMEType,
	}, got)
}

func TestRegistry_ResourceKeepsExplicitMIMEType(t *testing.T) {
	r := New()
	r.RegisterResource(Resource{URI: "file:///a.json", Name: "A", MIMEType: "application/json"})

	got, ok := r.GetResource("file:///a.json")
	require.True(t, ok)
	require.Equal(t, "application/json", got.MIMEType)
}

func TestRegistry_GetMissing(t *testing.T) {
	r := New()

	_, ok := r.GetTool("nonexistent")
	require.False(t, ok)

	_, ok = r.GetResource("nonexistent")
	require.False(t, ok)
}

func TestRegistry_ListTools(t *testing.T) {
	r := New()
	r.RegisterTool(ToolDefinition{Name: "tool1", Description: "First"})
	r.RegisterTool(ToolDefinition{Name: "tool2", Description: "Second"})

	tools := r.ListTools()
	require.Len(t, tools, 2)
	require.Equal(t, "tool1", tools[0].Name)
	require.Equal(t, "tool2", tools[1].Name)
}

func TestRegistry_ListResources(t *testing.T) {
	r := New()
	r1 := Resource{URI: "file:///a.txt", Name: "A", MIMEType: DefaultMIMEType}
	r2 := Resource{URI: "file:///b.txt", Name: "B", MIMEType: DefaultMIMEType}
	r.RegisterResource(r1)
	r.RegisterResource(r2)

	require.Equal(t, []Resource{r1, r2}, r.ListResources())
}

func TestRegistry_ReplaceIsLastWriteWins(t *testing.T) {
	r := New()
	r.RegisterTool(ToolDefinition{Name: "a", Description: "old"})
	r.RegisterTool(ToolDefinition{Name: "b", Description: "other"})
	r.RegisterTool(ToolDefinition{Name: "a", Description: "new"})

	tools := r.ListTools()
	require.Len(t, tools, 2)
	require.Equal(t, "a", tools[0].Name)
	require.Equal(t, "new", tools[0].Description)

	r.RegisterResource(Resource{URI: "u", Name: "old"})
	r.RegisterResource(Resource{URI: "u", Name: "new"})

	resources := r.ListResources()
	require.Len(t, resources, 1)
	require.Equal(t, "new", resources[0].Name)
}

func TestRegistry_ToolExists(t *testing.T) {
	r := New()
	require.False(t, r.ToolExists("search"))

	r.RegisterTool(ToolDefinition{Name: "search", Description: "Search"})
	require.True(t, r.ToolExists("search"))
}

func TestRegistry_ParametersAreCopied(t *testing.T) {
	params := []ToolParam{Param("q", ParamTypeString, "query")}

	r := New()
	r.RegisterTool(ToolDefinition{Name: "search", Parameters: params})

	params[0].Name = "mutated"

	got, _ := r.GetTool("search")
	require.Equal(t, "q", got.Parameters[0].Name)
}

func TestRegistry_Len(t *testing.T) {
	r := New()
	r.RegisterTool(ToolDefinition{Name: "a"})
	r.RegisterResource(Resource{URI: "x"})
	r.RegisterResource(Resource{URI: "y"})

	tools, resources := r.Len()
	require.Equal(t, 1, tools)
	require.Equal(t, 2, resources)
}

func TestRegistry_ConcurrentRegistration(t *testing.T) {
	r := New()

	var wg sync.WaitGroup

	for i := range 50 {
		wg.Go(func() {
			r.RegisterTool(ToolDefinition{
				Name: fmt.Sprintf("tool-%d", i),
				Handler: func(context.Context, map[string]any) (any, error) {
					return i, nil
				},
			})
		})

		wg.Go(func() {
			_ = r.ListTools()
			_ = r.ToToolSchemas()
		})
	}

	wg.Wait()

	require.Len(t, r.ListTools(), 50)
}

func TestParamTypeValid(t *testing.T) {
	for _, typ := range []ToolParamType{ParamTypeString, ParamTypeInteger, ParamTypeBoolean, ParamTypeNumber} {
		require.True(t, typ.Valid(), typ)
	}

	require.False(t, ToolParamType("array").Valid())
	require.Equal(t, "integer", ParamTypeInteger.String())
}

func TestParamConstructors(t *testing.T) {
	require.Equal(t, ToolParam{Name: "q", Type: ParamTypeString, Description: "query", Required: true},
		Param("q", ParamTypeString, "query"))
	require.Equal(t, ToolParam{Name: "n", Type: ParamTypeInteger, Description: "limit"},
		OptionalParam("n", ParamTypeInteger, "limit"))
}

func TestToolDefinition_HasParam(t *testing.T) {
	def := ToolDefinition{Parameters: []ToolParam{Param("q", ParamTypeString, "")}}

	require.True(t, def.HasParam("q"))
	require.False(t, def.HasParam("limit"))
}
