package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintab/deskstate/internal/value"
)

func TestTabKeepsAllowlistedSafeValues(t *testing.T) {
	clean, ok := Tab("screener", value.Object{
		"seriesIds": value.String("GDP,UNRATE"),
		"startDate": value.String("2000-01-01"),
		"apiKey":    value.String("sk-abcdef"),
	})
	require.True(t, ok)
	assert.Equal(t, value.Object{
		"seriesIds": value.String("GDP,UNRATE"),
		"startDate": value.String("2000-01-01"),
	}, clean)
}

func TestTabNonObjectCandidate(t *testing.T) {
	for _, candidate := range []value.Value{
		value.Null{},
		value.String("screener state"),
		value.Number(1),
		value.Bool(true),
		value.Array{value.String("x")},
		value.Opaque{},
	} {
		clean, ok := Tab("screener", candidate)
		assert.False(t, ok)
		assert.Nil(t, clean)
	}
}

func TestTabUnknownTab(t *testing.T) {
	clean, ok := Tab("unknownTab", value.Object{"foo": value.String("bar")})
	assert.False(t, ok)
	assert.Nil(t, clean)
}

func TestTabEmptyResult(t *testing.T) {
	// Allowlist exists but nothing survives
	clean, ok := Tab("notes", value.Object{})
	assert.False(t, ok)
	assert.Nil(t, clean)

	clean, ok = Tab("notes", value.Object{"scratch": value.String("draft")})
	assert.False(t, ok)
	assert.Nil(t, clean)
}

func TestTabDropsUnsafeValues(t *testing.T) {
	clean, ok := Tab("editor", value.Object{
		"documentId":  value.String("doc-1"),
		"fontSize":    value.Object{"px": value.Number(14)},
		"showOutline": value.Array{value.Bool(true), value.Null{}},
	})
	require.True(t, ok)
	assert.Equal(t, value.Object{"documentId": value.String("doc-1")}, clean)
}

func TestTabDropsOversizedStrings(t *testing.T) {
	clean, ok := Tab("deals", value.Object{
		"searchQuery":  value.String(strings.Repeat("x", 201)),
		"statusFilter": value.String("active"),
	})
	require.True(t, ok)
	assert.Equal(t, value.Object{"statusFilter": value.String("active")}, clean)
}

func TestTabDropsJWTValues(t *testing.T) {
	_, ok := Tab("deals", value.Object{
		"searchQuery": value.String("eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0"),
	})
	assert.False(t, ok)
}

func TestTabBlocksCredentialKeyEvenIfAllowlisted(t *testing.T) {
	// A misconfigured allowlist entry must not defeat the name heuristic
	tabAllowlists["deals"] = append(tabAllowlists["deals"], "apiToken")
	t.Cleanup(func() {
		keys := tabAllowlists["deals"]
		tabAllowlists["deals"] = keys[:len(keys)-1]
	})

	clean, ok := Tab("deals", value.Object{
		"apiToken":     value.String("sk-live-1234"),
		"statusFilter": value.String("active"),
	})
	require.True(t, ok)
	assert.Equal(t, value.Object{"statusFilter": value.String("active")}, clean)
}

func TestTabDoesNotMutateOrAliasCandidate(t *testing.T) {
	ids := value.Array{value.String("GDP")}
	candidate := value.Object{"seriesIds": ids, "apiKey": value.String("sk-1")}

	clean, ok := Tab("economic", candidate)
	require.True(t, ok)

	ids[0] = value.String("mutated")
	assert.Equal(t, value.String("GDP"), clean["seriesIds"].(value.Array)[0])
	assert.Contains(t, candidate, "apiKey")
}

func TestWorkspaceScreenerScenario(t *testing.T) {
	out := Workspace(value.Object{
		"screener": value.Object{
			"seriesIds": value.String("GDP,UNRATE"),
			"startDate": value.String("2000-01-01"),
			"apiKey":    value.String("sk-abcdef"),
		},
	})
	assert.Equal(t, value.Object{
		"screener": value.Object{
			"seriesIds": value.String("GDP,UNRATE"),
			"startDate": value.String("2000-01-01"),
		},
	}, out)
}

func TestWorkspaceUnknownTabScenario(t *testing.T) {
	out := Workspace(value.Object{
		"unknownTab": value.Object{"foo": value.String("bar")},
	})
	assert.Equal(t, value.Object{}, out)
}

func TestWorkspaceChatScenario(t *testing.T) {
	out := Workspace(value.Object{
		"chat": value.Object{
			"temperature":  value.Number(0.7),
			"maxTokens":    value.Number(2048),
			"sessionToken": value.String("eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxMjM0NTY3ODkwIn0"),
		},
	})
	assert.Equal(t, value.Object{
		"chat": value.Object{
			"temperature": value.Number(0.7),
			"maxTokens":   value.Number(2048),
		},
	}, out)
}

func TestWorkspaceEmptyTabScenario(t *testing.T) {
	out := Workspace(value.Object{"notes": value.Object{}})
	assert.Equal(t, value.Object{}, out)
	assert.NotContains(t, out, "notes")
}

func TestWorkspaceNonObjectInput(t *testing.T) {
	for _, ws := range []value.Value{
		value.Null{},
		value.String("corrupt"),
		value.Array{value.Object{"screener": value.Object{}}},
	} {
		assert.Equal(t, value.Object{}, Workspace(ws))
	}
}

func TestWorkspaceOutputSubsetOfAllowlist(t *testing.T) {
	out := Workspace(value.Object{
		"screener": value.Object{
			"seriesIds": value.String("GDP"),
			"theme":     value.String("dark"),
			"zoom":      value.Number(1.25),
		},
		"chat": value.Object{
			"model":   value.String("gpt-4"),
			"history": value.Array{value.Object{"role": value.String("user")}},
		},
	})
	for tabID, tab := range out {
		allowed, ok := Allowlist(tabID)
		require.True(t, ok)
		for key := range tab.(value.Object) {
			assert.Contains(t, allowed, key, "%s.%s", tabID, key)
		}
	}
}

func TestWorkspaceIdempotent(t *testing.T) {
	input := value.Object{
		"screener": value.Object{
			"seriesIds":     value.Array{value.String("GDP"), value.String("UNRATE")},
			"minMarketCap":  value.Number(1e9),
			"sortAscending": value.Bool(true),
			"apiKey":        value.String("sk-1"),
		},
		"chat": value.Object{
			"model":     value.String("gpt-4"),
			"maxTokens": value.Number(2048),
		},
		"unknownTab": value.Object{"foo": value.String("bar")},
	}

	once := Workspace(input)
	twice := Workspace(once)
	assert.Equal(t, once, twice)
}
