// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Render fields.
	FieldFormat     = "format"
	FieldDetectLang = "detect_lang"
	FieldBytesIn    = "bytes_in"
	FieldBytesOut   = "bytes_out"

	// Parse fields.
	FieldTokens       = "tokens"
	FieldBlocks       = "blocks"
	FieldDepthLimited = "depth_limited"

	// Watch fields.
	FieldWatchDir = "watch_dir"
	FieldEvent    = "event"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
