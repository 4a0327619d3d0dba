package models

import "time"

// PriceBar represents one day of OHLCV data.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// BalanceSheetRow holds the balance-sheet line items the checklist consumes.
// Missing provider fields are zero; scoring functions treat zero denominators
// as missing data and degrade to their neutral score.
type BalanceSheetRow struct {
	Date              string  `json:"date"`
	Cash              float64 `json:"cash"`
	TotalDebt         float64 `json:"total_debt"`
	TotalAssets       float64 `json:"total_assets"`
	TotalEquity       float64 `json:"total_equity"`
	PreferredEquity   float64 `json:"preferred_equity"`
	RetainedEarnings  float64 `json:"retained_earnings"`
	SharesOutstanding float64 `json:"shares_outstanding"`
}

// IncomeRow holds the income-statement line items the checklist consumes.
type IncomeRow struct {
	Date             string  `json:"date"`
	TotalRevenue     float64 `json:"total_revenue"`
	GrossProfit      float64 `json:"gross_profit"`
	OperatingIncome  float64 `json:"operating_income"`
	NetIncome        float64 `json:"net_income"`
	SellingMarketing float64 `json:"selling_marketing"`
	SellingGeneral   float64 `json:"selling_general"` // SG&A, fallback when S&M is not broken out
	EPS              float64 `json:"eps"`
}

// CashFlowRow holds the cash-flow line items used by the dilution,
// acquisition-growth, and shareholder-action checks.
type CashFlowRow struct {
	Date                 string  `json:"date"`
	OperatingCashFlow    float64 `json:"operating_cash_flow"`
	FreeCashFlow         float64 `json:"free_cash_flow"`
	CommonStockIssued    float64 `json:"common_stock_issued"`
	StockRepurchased     float64 `json:"stock_repurchased"`
	DividendsPaid        float64 `json:"dividends_paid"`
	DebtRepayment        float64 `json:"debt_repayment"`
	AcquisitionsNet      float64 `json:"acquisitions_net"`
	OtherInvestingCharge float64 `json:"other_investing"` // Fallback column when acquisitions are not broken out
}

// Financials bundles the statement history for one ticker, newest first.
type Financials struct {
	Ticker           string            `json:"ticker"`
	AnnualIncome     []IncomeRow       `json:"annual_income"`
	QuarterlyIncome  []IncomeRow       `json:"quarterly_income"`
	AnnualBalance    []BalanceSheetRow `json:"annual_balance"`
	QuarterlyBalance []BalanceSheetRow `json:"quarterly_balance"`
	AnnualCashFlow   []CashFlowRow     `json:"annual_cash_flow"`
}

// EarningsEvent is one reported quarter against analyst expectations.
type EarningsEvent struct {
	Date        string  `json:"date"`
	EPSActual   float64 `json:"eps_actual"`
	EPSEstimate float64 `json:"eps_estimate"`
}

// Profile holds the company profile fields the checklist consumes.
type Profile struct {
	Ticker           string  `json:"ticker"`
	Name             string  `json:"name"`
	Country          string  `json:"country"`
	Sector           string  `json:"sector"`
	Industry         string  `json:"industry"`
	Description      string  `json:"description"`
	MarketCap        float64 `json:"market_cap"`
	InsiderOwnPct    float64 `json:"insider_own_pct"` // Percent, 0-100
	AuditRisk        float64 `json:"audit_risk"`      // Provider risk scores, 1 (low) to 10 (high)
	BoardRisk        float64 `json:"board_risk"`
	CompensationRisk float64 `json:"compensation_risk"`
	OverallRisk      float64 `json:"overall_risk"`
	MissionStatement string  `json:"mission_statement,omitempty"`
}
