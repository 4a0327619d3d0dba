package common

import "testing"

func TestParseTicker(t *testing.T) {
	tests := []struct {
		input        string
		wantExchange string
		wantCode     string
	}{
		{"NASDAQ:AAPL", "NASDAQ", "AAPL"},
		{"nyse:ibm", "NYSE", "IBM"},
		{"AAPL", "", "AAPL"},
		{"aapl", "", "AAPL"},
		{"  msft  ", "", "MSFT"},
		{"", "", ""},
	}

	for _, tt := range tests {
		got := ParseTicker(tt.input)
		if got.Exchange != tt.wantExchange || got.Code != tt.wantCode {
			t.Errorf("ParseTicker(%q) = %q/%q, want %q/%q",
				tt.input, got.Exchange, got.Code, tt.wantExchange, tt.wantCode)
		}
	}
}

func TestProviderSymbol(t *testing.T) {
	tests := []struct {
		input         string
		defaultSuffix string
		want          string
	}{
		{"NASDAQ:AAPL", "US", "AAPL.US"},
		{"ASX:GNP", "US", "GNP.AU"},
		{"TSM", "US", "TSM.US"},
		{"TSM", ".US", "TSM.US"},
		{"TEVA", "", "TEVA.US"},
		{"", "US", ""},
	}

	for _, tt := range tests {
		got := ParseTicker(tt.input).ProviderSymbol(tt.defaultSuffix)
		if got != tt.want {
			t.Errorf("ProviderSymbol(%q, %q) = %q, want %q", tt.input, tt.defaultSuffix, got, tt.want)
		}
	}
}

func TestCacheKey(t *testing.T) {
	if got := ParseTicker("NYSE:IBM").CacheKey(); got != "ibm" {
		t.Errorf("CacheKey() = %q, want %q", got, "ibm")
	}
}
