// Package common provides shared utilities across the application.
package common

import (
	"strings"
)

// Ticker represents a parsed exchange-qualified ticker.
// Format: EXCHANGE:CODE (e.g., "NASDAQ:AAPL") or a bare code ("AAPL").
type Ticker struct {
	// Exchange is the exchange code (e.g., "NYSE", "NASDAQ")
	Exchange string
	// Code is the stock code (e.g., "AAPL")
	Code string
	// Raw is the original ticker string
	Raw string
}

// ExchangeToSuffix maps exchange codes to market-data API suffixes.
var ExchangeToSuffix = map[string]string{
	"NYSE":   ".US",
	"NASDAQ": ".US",
	"ASX":    ".AU",
	"LSE":    ".LSE",
	"TSX":    ".TO",
	"XETRA":  ".XETRA",
	"INDX":   ".INDX", // For indices like GSPC (S&P 500)
}

// ParseTicker parses an exchange-qualified ticker string.
// Supports formats:
//   - "NASDAQ:AAPL" -> Exchange="NASDAQ", Code="AAPL"
//   - "AAPL" -> Exchange="", Code="AAPL"
//   - "aapl" -> Code="AAPL" (normalized to uppercase)
func ParseTicker(ticker string) Ticker {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return Ticker{}
	}

	if idx := strings.Index(ticker, ":"); idx > 0 {
		return Ticker{
			Exchange: strings.ToUpper(ticker[:idx]),
			Code:     strings.ToUpper(ticker[idx+1:]),
			Raw:      ticker,
		}
	}

	return Ticker{
		Code: strings.ToUpper(ticker),
		Raw:  ticker,
	}
}

// ProviderSymbol converts the ticker to the market-data provider's
// CODE.SUFFIX format (e.g., "AAPL.US"). defaultSuffix is used when the
// exchange is unknown or absent; it may be given with or without the dot.
func (t Ticker) ProviderSymbol(defaultSuffix string) string {
	if t.Code == "" {
		return ""
	}
	suffix, ok := ExchangeToSuffix[t.Exchange]
	if !ok {
		suffix = strings.ToUpper(strings.TrimPrefix(defaultSuffix, "."))
		if suffix == "" {
			suffix = "US"
		}
		suffix = "." + suffix
	}
	return t.Code + suffix
}

// CacheKey returns the normalized lowercase cache key for the ticker.
func (t Ticker) CacheKey() string {
	return strings.ToLower(t.Code)
}
