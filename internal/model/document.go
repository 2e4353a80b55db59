package model

import "encoding/json"

// DocumentInfo is one row of the document listing.
// Modified is the file mtime in UTC ISO-8601 with millisecond precision.
// Error is only set in partial listing mode for documents that could not be read.
type DocumentInfo struct {
	Filename string `json:"filename"`
	Modified string `json:"modified,omitempty"`
	CPCount  int    `json:"cPCount"`
	Error    string `json:"error,omitempty"`
}

// SaveRequest is the body accepted by the save endpoint.
type SaveRequest struct {
	Filename string          `json:"filename"`
	Data     json.RawMessage `json:"data" swaggertype:"object"`
}
