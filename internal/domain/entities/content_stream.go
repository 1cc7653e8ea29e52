package entities

import "io"

// ContentStream is the byte payload of a document.
// The consumer owns Reader and must close it.
type ContentStream struct {
	Filename string
	MimeType string
	Length   int64 // -1 when unknown
	Reader   io.ReadCloser
}

// ContentOutcome tells whether a document had retrievable content.
type ContentOutcome int

const (
	ContentAvailable ContentOutcome = iota
	ContentUnavailable
)

// ContentResult is the outcome of a content stream fetch. Transport failures
// are reported as errors by the fetching side and never end up here.
type ContentResult struct {
	Outcome ContentOutcome
	Stream  *ContentStream
}

// NewAvailableContent wraps a stream in a ContentAvailable result.
func NewAvailableContent(stream *ContentStream) ContentResult {
	return ContentResult{Outcome: ContentAvailable, Stream: stream}
}

// NewUnavailableContent returns the ContentUnavailable result.
func NewUnavailableContent() ContentResult {
	return ContentResult{Outcome: ContentUnavailable}
}
