// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldPathA  = "path_a"
	FieldPathB  = "path_b"
	FieldInput  = "input"
	FieldOutput = "output"

	// Configuration fields.
	FieldAlgorithm = "algorithm"
	FieldFormat    = "format"
	FieldContext   = "context"
	FieldColor     = "color"

	// Statistics fields.
	FieldLinesA    = "lines_a"
	FieldLinesB    = "lines_b"
	FieldAnchors   = "anchors"
	FieldHunks     = "hunks"
	FieldAdditions = "additions"
	FieldDeletions = "deletions"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Style check fields.
	FieldLine  = "line"
	FieldWidth = "width"
)
