package edgar

import (
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/gauntlet/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient("test test@example.com",
		WithBaseURLs(srv.URL+"/files/company_tickers.json", srv.URL, srv.URL+"/Archives"),
		WithRateLimit(1000),
	)
}

func testHandler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/files/company_tickers.json", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "test test@example.com" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, `{"0":{"cik_str":320193,"ticker":"AAPL","title":"Apple Inc."},"1":{"cik_str":1318605,"ticker":"TSLA","title":"Tesla, Inc."}}`)
	})
	mux.HandleFunc("/submissions/CIK0000320193.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"cik":"320193","name":"Apple Inc.",
			"filings":{"recent":{
				"accessionNumber":["0000320193-24-000006","0000320193-23-000106"],
				"filingDate":["2024-02-02","2023-11-03"],
				"form":["10-Q","10-K"],
				"primaryDocument":["aapl-20231230.htm","aapl-20230930.htm"]
			}}
		}`)
	})
	mux.HandleFunc("/Archives/edgar/data/320193/000032019323000106/aapl-20230930.htm", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><h2>Item 1. Business</h2><p>Apple designs smartphones.</p></body></html>`)
	})
	return mux
}

func TestLookupCIK(t *testing.T) {
	client := newTestClient(t, testHandler(t))

	cik, err := client.LookupCIK(context.Background(), "aapl")
	require.NoError(t, err)
	assert.Equal(t, "0000320193", cik)

	// Second lookup hits the in-memory index
	cik, err = client.LookupCIK(context.Background(), "TSLA")
	require.NoError(t, err)
	assert.Equal(t, "0001318605", cik)

	_, err = client.LookupCIK(context.Background(), "NOPE")
	assert.Error(t, err)
}

func TestLookupCIKGzipResponse(t *testing.T) {
	// SEC hosts compress when the client advertises gzip support. The
	// transport must be left to negotiate encoding itself so it also
	// transparently decompresses.
	mux := http.NewServeMux()
	mux.HandleFunc("/files/company_tickers.json", func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			fmt.Fprint(w, `{"0":{"cik_str":320193,"ticker":"AAPL","title":"Apple Inc."}}`)
			return
		}
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		fmt.Fprint(gz, `{"0":{"cik_str":320193,"ticker":"AAPL","title":"Apple Inc."}}`)
		gz.Close()
	})
	client := newTestClient(t, mux)

	cik, err := client.LookupCIK(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "0000320193", cik)
}

func TestLatestAnnualPrefers10K(t *testing.T) {
	client := newTestClient(t, testHandler(t))

	filing, err := client.LatestAnnual(context.Background(), "AAPL")
	require.NoError(t, err)
	require.NotNil(t, filing)

	assert.Equal(t, models.Form10K, filing.FormType)
	assert.Equal(t, "2023-11-03", filing.FilingDate)
	assert.Contains(t, filing.Text, "Apple designs smartphones.")
	assert.Contains(t, filing.Text, "Item 1. Business")
}

func TestLatestAnnualNoAnnualFiling(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/files/company_tickers.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"0":{"cik_str":320193,"ticker":"AAPL","title":"Apple Inc."}}`)
	})
	mux.HandleFunc("/submissions/CIK0000320193.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"cik":"320193","filings":{"recent":{"accessionNumber":["a"],"filingDate":["2024-01-01"],"form":["8-K"],"primaryDocument":["doc.htm"]}}}`)
	})
	client := newTestClient(t, mux)

	filing, err := client.LatestAnnual(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Nil(t, filing)
}

func TestSelectAnnualFallsBackTo20F(t *testing.T) {
	refs := []FilingRef{
		{Form: "6-K", FilingDate: "2024-03-01"},
		{Form: "20-F", FilingDate: "2024-02-01", AccessionNumber: "x", PrimaryDocument: "d.htm"},
		{Form: "20-F", FilingDate: "2023-02-01"},
	}

	ref, formType := selectAnnual(refs)
	require.NotNil(t, ref)
	assert.Equal(t, models.Form20F, formType)
	assert.Equal(t, "2024-02-01", ref.FilingDate)
}

func TestDocumentURL(t *testing.T) {
	client := NewClient("test test@example.com")

	url := client.DocumentURL("0000320193", FilingRef{
		AccessionNumber: "0000320193-23-000106",
		PrimaryDocument: "aapl-20230930.htm",
	})
	assert.Equal(t, "https://www.sec.gov/Archives/edgar/data/320193/000032019323000106/aapl-20230930.htm", url)
}

func TestNormalizeHTML(t *testing.T) {
	text := NormalizeHTML(`<html><head><style>p{color:red}</style></head><body><p>First&nbsp;line</p><script>var x=1;</script><div>Second line</div></body></html>`)

	assert.Contains(t, text, "First line")
	assert.Contains(t, text, "Second line")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "var x=1")
}
