package types

import "fmt"

// DocumentStatus represents the processing outcome of a document
type DocumentStatus string

const (
	DocumentStatusOK    DocumentStatus = "OK"
	DocumentStatusError DocumentStatus = "Error"
)

// AllDocumentStatuses returns all valid document statuses
func AllDocumentStatuses() []DocumentStatus {
	return []DocumentStatus{
		DocumentStatusOK,
		DocumentStatusError,
	}
}

// IsValid checks if the document status is valid
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusOK,
		DocumentStatusError:
		return true
	default:
		return false
	}
}

// String returns the string representation of the document status
func (s DocumentStatus) String() string {
	return string(s)
}

// ParseDocumentStatus parses a string into a DocumentStatus
func ParseDocumentStatus(s string) (DocumentStatus, error) {
	status := DocumentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid document status: %s", s)
	}
	return status, nil
}
