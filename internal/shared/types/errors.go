package types

import "errors"

var (
	ErrSummariesNotFound = errors.New("summaries directory not found")
	ErrFileNotFound      = errors.New("file not found")
	ErrMalformedFile     = errors.New("malformed summary file")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
