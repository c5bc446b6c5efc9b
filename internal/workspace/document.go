package workspace

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/fintab/deskstate/internal/value"
)

//go:embed schema.cue
var documentSchema string

// DocumentVersion is the current workspace document format version.
const DocumentVersion = 1

// Document is the parsed form of a workspace import/export file.
// Tabs is untrusted: parsing validates shape only, and the sanitizer
// must run before any of it is persisted.
type Document struct {
	Version int
	Name    string
	Tabs    value.Object
}

// DocumentErrorCode categorizes document errors.
type DocumentErrorCode string

const (
	// ErrCodeParse indicates the document is not valid JSON.
	ErrCodeParse DocumentErrorCode = "PARSE_ERROR"

	// ErrCodeSchema indicates the document does not satisfy the schema
	// (wrong version, missing name, unknown top-level fields, ...).
	ErrCodeSchema DocumentErrorCode = "SCHEMA_VIOLATION"
)

// DocumentError is a document parse or validation failure with a
// machine-readable code.
type DocumentError struct {
	Code    DocumentErrorCode
	Message string
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ParseDocument parses and schema-validates a workspace document.
// The embedded CUE schema enforces coarse shape (version, name, tabs
// object, no stray top-level fields); the tab payloads themselves remain
// untrusted and must still pass through the sanitizer.
func ParseDocument(data []byte) (*Document, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(documentSchema, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		// Embedded schema is part of the build; failing to compile it is
		// a programming error, not an input error.
		return nil, fmt.Errorf("compile document schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Document"))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("lookup #Document: %w", err)
	}

	// JSON is a subset of CUE, so the document compiles directly.
	doc := ctx.CompileBytes(data, cue.Filename("workspace.json"))
	if err := doc.Err(); err != nil {
		return nil, &DocumentError{Code: ErrCodeParse, Message: err.Error()}
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return nil, &DocumentError{Code: ErrCodeSchema, Message: err.Error()}
	}

	var raw struct {
		Version int            `json:"version"`
		Name    string         `json:"name"`
		Tabs    map[string]any `json:"tabs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		// Unreachable after CUE compilation succeeded; kept for safety
		return nil, &DocumentError{Code: ErrCodeParse, Message: err.Error()}
	}

	tabs, ok := value.FromAny(raw.Tabs).(value.Object)
	if !ok {
		tabs = value.Object{}
	}

	return &Document{
		Version: raw.Version,
		Name:    raw.Name,
		Tabs:    tabs,
	}, nil
}

// MarshalCanonical encodes the document as canonical JSON, suitable for
// export files and byte-stable comparisons.
func (d *Document) MarshalCanonical() ([]byte, error) {
	obj := value.Object{
		"version": value.Number(d.Version),
		"name":    value.String(d.Name),
		"tabs":    d.Tabs,
	}
	data, err := value.MarshalCanonical(obj)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return data, nil
}
