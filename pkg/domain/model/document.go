package model

import "github.com/juris-lab/themis/pkg/domain/types"

// Failure describes why a document yielded no text. It replaces the
// portal assistant's historical tagged-string convention with a typed
// value; Marker renders the legacy strings for display compatibility.
type Failure struct {
	Kind    types.FailureKind
	Message string
}

// NewFailure creates a document failure of the given kind.
func NewFailure(kind types.FailureKind, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}

// MissingURLFailure is the failure for records without a document URL.
func MissingURLFailure() *Failure {
	return &Failure{Kind: types.FailureMissingURL}
}

// Marker renders the failure in the legacy bracket notation:
// "[Sin URL de documento]" for a missing URL, "[ERROR: <message>]"
// for everything else.
func (f *Failure) Marker() string {
	if f.Kind == types.FailureMissingURL {
		return "[Sin URL de documento]"
	}
	return "[ERROR: " + f.Message + "]"
}

// Document is one processed ruling: the record metadata plus the
// extraction outcome. Created once per processed record and never
// mutated afterwards.
type Document struct {
	CaseNumber string
	Date       string
	Parties    string
	Text       string
	Failure    *Failure
}

// NewDocument builds a successful document from its source record.
func NewDocument(e *Expediente, text string) *Document {
	return &Document{
		CaseNumber: e.CaseNumber(),
		Date:       e.DecisionDate(),
		Parties:    e.Parties(),
		Text:       text,
	}
}

// NewFailedDocument builds a document carrying a failure instead of text.
func NewFailedDocument(e *Expediente, failure *Failure) *Document {
	return &Document{
		CaseNumber: e.CaseNumber(),
		Date:       e.DecisionDate(),
		Parties:    e.Parties(),
		Failure:    failure,
	}
}

// Succeeded reports whether text extraction succeeded.
func (d *Document) Succeeded() bool {
	return d.Failure == nil
}

// DisplayText returns the extracted text, or the legacy failure marker.
func (d *Document) DisplayText() string {
	if d.Failure != nil {
		return d.Failure.Marker()
	}
	return d.Text
}
