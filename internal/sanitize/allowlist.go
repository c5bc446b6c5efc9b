package sanitize

import "slices"

// tabAllowlists maps each tab identifier to the state keys permitted to
// survive sanitization. The table is fixed at build time; supporting a
// new tab means extending it here. Slice order is the iteration order of
// the tab sanitizer, kept stable for reproducibility.
var tabAllowlists = map[string][]string{
	"screener": {
		"seriesIds",
		"startDate",
		"endDate",
		"exchange",
		"sector",
		"minMarketCap",
		"maxMarketCap",
		"sortColumn",
		"sortAscending",
	},
	"economic": {
		"seriesIds",
		"startDate",
		"endDate",
		"frequency",
		"units",
		"showRecessions",
	},
	"analytics": {
		"activeModel",
		"targetTicker",
		"acquirerTicker",
		"discountRate",
		"terminalGrowth",
		"synergyCase",
	},
	"editor": {
		"documentId",
		"fontSize",
		"showOutline",
	},
	"notes": {
		"activeNoteId",
		"sortOrder",
		"showArchived",
	},
	"deals": {
		"searchQuery",
		"statusFilter",
		"sectorFilter",
		"sortColumn",
		"sortAscending",
	},
	"chat": {
		"model",
		"temperature",
		"maxTokens",
		"showSystemPrompt",
	},
}

// Allowlist returns the permitted keys for a tab identifier, and whether
// the tab is known at all. The returned slice is shared; callers must not
// mutate it.
func Allowlist(tabID string) ([]string, bool) {
	keys, ok := tabAllowlists[tabID]
	return keys, ok
}

// Tabs returns the known tab identifiers in sorted order.
func Tabs() []string {
	tabs := make([]string, 0, len(tabAllowlists))
	for tab := range tabAllowlists {
		tabs = append(tabs, tab)
	}
	slices.Sort(tabs)
	return tabs
}
