package marketdata

import (
	"sort"
	"strconv"
	"time"

	"github.com/ternarybob/gauntlet/internal/models"
)

// eodBar represents a single day's end-of-day price data.
type eodBar struct {
	DateStr       string  `json:"date"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Close         float64 `json:"close"`
	AdjustedClose float64 `json:"adjusted_close"`
	Volume        int64   `json:"volume"`
}

// fundamentalsResponse represents the fundamentals payload for a symbol.
// Statement rows arrive as string-valued maps keyed by report date.
type fundamentalsResponse struct {
	General     *generalInfo  `json:"General"`
	Highlights  *highlights   `json:"Highlights"`
	SharesStats *sharesStats  `json:"SharesStats"`
	Earnings    *earningsData `json:"Earnings"`
	Financials  *statements   `json:"Financials"`
}

type generalInfo struct {
	Code        string `json:"Code"`
	Name        string `json:"Name"`
	CountryName string `json:"CountryName"`
	Sector      string `json:"Sector"`
	Industry    string `json:"Industry"`
	Description string `json:"Description"`
}

type highlights struct {
	MarketCapitalization float64 `json:"MarketCapitalization"`
	ReturnOnEquityTTM    float64 `json:"ReturnOnEquityTTM"`
	GrossProfitTTM       float64 `json:"GrossProfitTTM"`
	DilutedEpsTTM        float64 `json:"DilutedEpsTTM"`
}

type sharesStats struct {
	SharesOutstanding   float64 `json:"SharesOutstanding"`
	PercentInsiders     float64 `json:"PercentInsiders"`
	PercentInstitutions float64 `json:"PercentInstitutions"`
}

type earningsData struct {
	History map[string]earningsHistoryEntry `json:"History"`
	Annual  map[string]earningsAnnualEntry  `json:"Annual"`
}

type earningsHistoryEntry struct {
	ReportDate  string  `json:"reportDate"`
	Date        string  `json:"date"`
	EPSActual   float64 `json:"epsActual"`
	EPSEstimate float64 `json:"epsEstimate"`
}

type earningsAnnualEntry struct {
	Date      string  `json:"date"`
	EPSActual float64 `json:"epsActual"`
}

// statements contains the three financial statements.
type statements struct {
	BalanceSheet    *statement `json:"Balance_Sheet"`
	CashFlow        *statement `json:"Cash_Flow"`
	IncomeStatement *statement `json:"Income_Statement"`
}

// statement holds quarterly and yearly rows keyed by report date. Values are
// numeric strings, nulls, or numbers depending on the field and plan.
type statement struct {
	Currency  string                            `json:"currency"`
	Quarterly map[string]map[string]interface{} `json:"quarterly"`
	Yearly    map[string]map[string]interface{} `json:"yearly"`
}

// num reads the first present key from a statement row, tolerating string,
// float64, and null encodings. Missing fields report zero.
func num(row map[string]interface{}, keys ...string) float64 {
	for _, key := range keys {
		raw, ok := row[key]
		if !ok || raw == nil {
			continue
		}
		switch v := raw.(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// sortedDatesDesc returns statement report dates newest first.
func sortedDatesDesc(rows map[string]map[string]interface{}) []string {
	dates := make([]string, 0, len(rows))
	for date := range rows {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

func mapIncomeRows(rows map[string]map[string]interface{}, epsByYear map[string]float64) []models.IncomeRow {
	out := make([]models.IncomeRow, 0, len(rows))
	for _, date := range sortedDatesDesc(rows) {
		row := rows[date]
		ir := models.IncomeRow{
			Date:             date,
			TotalRevenue:     num(row, "totalRevenue"),
			GrossProfit:      num(row, "grossProfit"),
			OperatingIncome:  num(row, "operatingIncome"),
			NetIncome:        num(row, "netIncome"),
			SellingMarketing: num(row, "sellingAndMarketingExpenses"),
			SellingGeneral:   num(row, "sellingGeneralAdministrative"),
		}
		if len(date) >= 4 {
			ir.EPS = epsByYear[date[:4]]
		}
		out = append(out, ir)
	}
	return out
}

func mapBalanceRows(rows map[string]map[string]interface{}) []models.BalanceSheetRow {
	out := make([]models.BalanceSheetRow, 0, len(rows))
	for _, date := range sortedDatesDesc(rows) {
		row := rows[date]
		out = append(out, models.BalanceSheetRow{
			Date:              date,
			Cash:              num(row, "cashAndEquivalents", "cash"),
			TotalDebt:         num(row, "shortLongTermDebtTotal", "longTermDebtTotal"),
			TotalAssets:       num(row, "totalAssets"),
			TotalEquity:       num(row, "totalStockholderEquity"),
			PreferredEquity:   num(row, "preferredStockTotalEquity"),
			RetainedEarnings:  num(row, "retainedEarnings"),
			SharesOutstanding: num(row, "commonStockSharesOutstanding"),
		})
	}
	return out
}

func mapCashFlowRows(rows map[string]map[string]interface{}) []models.CashFlowRow {
	out := make([]models.CashFlowRow, 0, len(rows))
	for _, date := range sortedDatesDesc(rows) {
		row := rows[date]
		out = append(out, models.CashFlowRow{
			Date:                 date,
			OperatingCashFlow:    num(row, "totalCashFromOperatingActivities"),
			FreeCashFlow:         num(row, "freeCashFlow"),
			CommonStockIssued:    num(row, "issuanceOfCapitalStock"),
			StockRepurchased:     num(row, "salePurchaseOfStock"),
			DividendsPaid:        num(row, "dividendsPaid"),
			DebtRepayment:        num(row, "netBorrowings"),
			AcquisitionsNet:      num(row, "acquisitionsNet"),
			OtherInvestingCharge: num(row, "otherCashflowsFromInvestingActivities"),
		})
	}
	return out
}

// mapFinancials converts a fundamentals payload into the statement bundle the
// checklist consumes, newest rows first.
func mapFinancials(ticker string, resp *fundamentalsResponse) *models.Financials {
	fin := &models.Financials{Ticker: ticker}
	if resp == nil || resp.Financials == nil {
		return fin
	}

	epsByYear := map[string]float64{}
	if resp.Earnings != nil {
		for _, entry := range resp.Earnings.Annual {
			if len(entry.Date) >= 4 {
				epsByYear[entry.Date[:4]] = entry.EPSActual
			}
		}
	}

	if is := resp.Financials.IncomeStatement; is != nil {
		fin.AnnualIncome = mapIncomeRows(is.Yearly, epsByYear)
		fin.QuarterlyIncome = mapIncomeRows(is.Quarterly, epsByYear)
	}
	if bs := resp.Financials.BalanceSheet; bs != nil {
		fin.AnnualBalance = mapBalanceRows(bs.Yearly)
		fin.QuarterlyBalance = mapBalanceRows(bs.Quarterly)
	}
	if cf := resp.Financials.CashFlow; cf != nil {
		fin.AnnualCashFlow = mapCashFlowRows(cf.Yearly)
	}
	return fin
}

// mapProfile converts the General/Highlights/SharesStats sections into a
// company profile. Governance risk scores are not carried by this provider
// and stay zero; downstream scoring treats zero as missing.
func mapProfile(ticker string, resp *fundamentalsResponse) *models.Profile {
	profile := &models.Profile{Ticker: ticker}
	if resp == nil {
		return profile
	}
	if g := resp.General; g != nil {
		profile.Name = g.Name
		profile.Country = g.CountryName
		profile.Sector = g.Sector
		profile.Industry = g.Industry
		profile.Description = g.Description
	}
	if h := resp.Highlights; h != nil {
		profile.MarketCap = h.MarketCapitalization
	}
	if s := resp.SharesStats; s != nil {
		profile.InsiderOwnPct = s.PercentInsiders
	}
	return profile
}

// mapEarnings flattens the quarterly earnings history into reported events,
// newest first. Quarters with no reported actual are dropped.
func mapEarnings(resp *fundamentalsResponse) []models.EarningsEvent {
	if resp == nil || resp.Earnings == nil {
		return nil
	}
	events := make([]models.EarningsEvent, 0, len(resp.Earnings.History))
	for _, entry := range resp.Earnings.History {
		if entry.EPSActual == 0 && entry.EPSEstimate == 0 {
			continue
		}
		date := entry.ReportDate
		if date == "" {
			date = entry.Date
		}
		events = append(events, models.EarningsEvent{
			Date:        date,
			EPSActual:   entry.EPSActual,
			EPSEstimate: entry.EPSEstimate,
		})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date > events[j].Date })
	return events
}

func mapPriceBars(bars []eodBar) []models.PriceBar {
	out := make([]models.PriceBar, 0, len(bars))
	for _, bar := range bars {
		t, err := time.Parse("2006-01-02", bar.DateStr)
		if err != nil {
			continue
		}
		close := bar.AdjustedClose
		if close == 0 {
			close = bar.Close
		}
		out = append(out, models.PriceBar{
			Date:   t,
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  close,
			Volume: bar.Volume,
		})
	}
	return out
}
