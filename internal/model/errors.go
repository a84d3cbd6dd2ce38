package model

import "fmt"

// ClassificationError reports a bill-type / old-bill-type combination that no
// classification table covers. Production consolidation does not fail on it;
// the line's tax buckets stay zero and the anomaly is surfaced as a warning.
type ClassificationError struct {
	PBLKey      string
	BillType    int
	OldBillType int
}

func (e *ClassificationError) Error() string {
	if e.OldBillType != 0 {
		return fmt.Sprintf("no classification for bill type %d/%d (unit %s)", e.BillType, e.OldBillType, e.PBLKey)
	}
	return fmt.Sprintf("no classification for bill type %d (unit %s)", e.BillType, e.PBLKey)
}

// LookupError represents a failed company/project reference lookup.
type LookupError struct {
	Kind string // "company" or "project"
	Code string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q not found in reference data", e.Kind, e.Code)
}

// NewLookupError creates a new lookup error.
func NewLookupError(kind, code string) *LookupError {
	return &LookupError{Kind: kind, Code: code}
}

// RenderError represents a document rendering failure with stage context.
type RenderError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render failed [%s]: %s (%v)", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("render failed [%s]: %s", e.Stage, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new render error.
func NewRenderError(stage, message string, cause error) *RenderError {
	return &RenderError{Stage: stage, Message: message, Cause: cause}
}
