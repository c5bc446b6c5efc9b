package sanitize

import "github.com/fintab/deskstate/internal/value"

// Tab filters one tab's candidate state against that tab's allowlist.
// It returns the cleaned state and true when at least one key survives;
// otherwise nil and false. "No result" covers: candidate is not a plain
// object, the tab identifier is unknown, or every key was absent or
// rejected.
//
// Pure function of its inputs; the candidate is never mutated and the
// result never aliases it.
func Tab(tabID string, candidate value.Value) (value.Object, bool) {
	obj, ok := candidate.(value.Object)
	if !ok {
		return nil, false
	}

	keys, ok := Allowlist(tabID)
	if !ok {
		return nil, false
	}

	out := value.Object{}
	for _, key := range keys {
		v, present := obj[key]
		if !present {
			continue
		}
		// Checked even for allowlisted keys; see package doc
		if isCredentialKey(key) {
			continue
		}
		if !isSafe(v) {
			continue
		}
		if s, isString := v.(value.String); isString && looksLikeCredential(string(s)) {
			continue
		}
		out[key] = value.Clone(v)
	}

	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// Workspace filters a full workspace snapshot tab by tab. Tabs whose
// sanitized state is empty are absent from the result, never present
// with an empty object. A non-object input yields an empty mapping.
//
// Every entry in the returned object is a value.Object produced by Tab.
func Workspace(ws value.Value) value.Object {
	out := value.Object{}

	obj, ok := ws.(value.Object)
	if !ok {
		return out
	}

	for tabID, candidate := range obj {
		if clean, ok := Tab(tabID, candidate); ok {
			out[tabID] = clean
		}
	}
	return out
}
