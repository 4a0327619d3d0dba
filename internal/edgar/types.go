// Package edgar provides a client for the SEC EDGAR full-text filing system.
// This package centralizes all EDGAR interactions for the application.
package edgar

import (
	"fmt"
	"time"
)

// APIError represents an error response from EDGAR.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("EDGAR error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// RateLimitError represents a rate limit error.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("EDGAR rate limit exceeded, retry after %v", e.RetryAfter)
}

// companyTicker is one entry of the SEC company_tickers.json index.
type companyTicker struct {
	CIK    int64  `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

// Submissions is the response of the EDGAR submissions endpoint. Filing
// metadata is delivered as parallel arrays: index i of each slice describes
// the same filing.
type Submissions struct {
	CIK     string `json:"cik"`
	Name    string `json:"name"`
	Filings struct {
		Recent RecentFilings `json:"recent"`
	} `json:"filings"`
}

// RecentFilings holds the parallel filing-metadata arrays.
type RecentFilings struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
}

// FilingRef is one filing's metadata assembled from the parallel arrays.
type FilingRef struct {
	AccessionNumber string
	FilingDate      string
	Form            string
	PrimaryDocument string
}

// Refs flattens the parallel arrays into per-filing records, skipping
// trailing entries when the arrays are ragged.
func (r RecentFilings) Refs() []FilingRef {
	n := len(r.AccessionNumber)
	if len(r.FilingDate) < n {
		n = len(r.FilingDate)
	}
	if len(r.Form) < n {
		n = len(r.Form)
	}
	if len(r.PrimaryDocument) < n {
		n = len(r.PrimaryDocument)
	}

	refs := make([]FilingRef, 0, n)
	for i := 0; i < n; i++ {
		refs = append(refs, FilingRef{
			AccessionNumber: r.AccessionNumber[i],
			FilingDate:      r.FilingDate[i],
			Form:            r.Form[i],
			PrimaryDocument: r.PrimaryDocument[i],
		})
	}
	return refs
}
