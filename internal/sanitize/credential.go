package sanitize

import "regexp"

// maxStringLen bounds persisted string values. UI state fields are short;
// anything longer is either a paste accident or a secret, and neither
// belongs in a saved workspace.
const maxStringLen = 200

// credentialKeyPattern flags key names that resemble secrets. Substring
// match, case-insensitive: "authToken" and "fredApiKey" are both caught.
// The separators in private-key and session-id are optional so the
// camelCase forms ("privateKey", "sessionId") are caught too. The token
// alternative is anchored to the end of the name so that "sessionToken"
// and "apiToken" are blocked while "maxTokens" is not.
var credentialKeyPattern = regexp.MustCompile(
	`(?i)api[_-]?key|secret|password|token$|credential|auth|private[_-]?key|session[_-]?id`,
)

// jwtPattern matches the leading two segments of a JSON Web Token:
// a base64url header starting with "eyJ" ({" encoded), a dot, and a
// base64url payload. A third segment is not required - an unsigned or
// truncated token is still a token.
var jwtPattern = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`)

// isCredentialKey reports whether a key name resembles a secret and must
// be dropped regardless of its value or allowlist membership.
func isCredentialKey(name string) bool {
	return credentialKeyPattern.MatchString(name)
}

// looksLikeCredential reports whether a string value should be treated as
// a secret: oversized, or shaped like a JWT.
func looksLikeCredential(s string) bool {
	if len(s) > maxStringLen {
		return true
	}
	return jwtPattern.MatchString(s)
}
