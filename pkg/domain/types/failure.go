package types

import "fmt"

// FailureKind classifies why a document yielded no usable text.
// Document-level failures are data, not errors: one bad PDF must not
// abort the batch it belongs to.
type FailureKind string

const (
	// FailureInvalidContent means the payload was not a PDF.
	FailureInvalidContent FailureKind = "invalid_content"
	// FailureMissingURL means the record carried no document URL.
	FailureMissingURL FailureKind = "missing_url"
	// FailureNetwork means the download itself failed.
	FailureNetwork FailureKind = "network_failure"
	// FailureParse means the PDF could not be parsed.
	FailureParse FailureKind = "parse_failure"
)

// AllFailureKinds returns all valid failure kinds
func AllFailureKinds() []FailureKind {
	return []FailureKind{
		FailureInvalidContent,
		FailureMissingURL,
		FailureNetwork,
		FailureParse,
	}
}

// IsValid checks if the failure kind is valid
func (k FailureKind) IsValid() bool {
	switch k {
	case FailureInvalidContent,
		FailureMissingURL,
		FailureNetwork,
		FailureParse:
		return true
	default:
		return false
	}
}

// String returns the string representation of the failure kind
func (k FailureKind) String() string {
	return string(k)
}

// ParseFailureKind parses a string into a FailureKind
func ParseFailureKind(s string) (FailureKind, error) {
	kind := FailureKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid failure kind: %s", s)
	}
	return kind, nil
}
