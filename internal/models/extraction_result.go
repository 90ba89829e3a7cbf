package models

// ExtractionResult is the complete outcome of one extraction call.
// Success and a non-empty token list are independent signals: a truncated
// scan still returns tokens alongside its truncation error.
type ExtractionResult struct {
	Success bool         `json:"success"`
	Urls    []Url        `json:"urls"`
	Errors  []ParseError `json:"errors,omitempty"`
	Format  string       `json:"format"`
}

// NewExtractionResult creates a successful result for the given format.
func NewExtractionResult(format string, urls []Url) ExtractionResult {
	if urls == nil {
		urls = []Url{}
	}
	return ExtractionResult{
		Success: true,
		Urls:    urls,
		Errors:  []ParseError{},
		Format:  format,
	}
}

// NewFailedExtractionResult creates an unsuccessful, token-free result
// carrying the given errors.
func NewFailedExtractionResult(format string, errors ...ParseError) ExtractionResult {
	return ExtractionResult{
		Success: false,
		Urls:    []Url{},
		Errors:  errors,
		Format:  format,
	}
}
