// Package models defines the domain types shared across services.
package models

import "time"

// FormType identifies the kind of annual disclosure.
type FormType string

const (
	// Form10K is the domestic annual report form.
	Form10K FormType = "10-K"
	// Form20F is the foreign-issuer annual report form, used as fallback.
	Form20F FormType = "20-F"
)

// Filing is a single fetched annual disclosure document. Immutable once
// fetched; replaced only when its cache entry expires.
type Filing struct {
	Ticker     string    `json:"ticker"`
	CIK        string    `json:"cik"`
	FormType   FormType  `json:"form_type"`
	FilingDate string    `json:"filing_date"` // YYYY-MM-DD as reported by the index
	URL        string    `json:"url"`
	Text       string    `json:"text"`
	FetchedAt  time.Time `json:"fetched_at"`
}

// HasText reports whether the filing carries a usable text body.
func (f *Filing) HasText() bool {
	return f != nil && len(f.Text) > 0
}
