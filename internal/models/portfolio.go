package models

// PortfolioSummary is the registry's aggregate view of a user's holdings.
type PortfolioSummary struct {
	TotalInvested          int64           `json:"totalInvested"`
	ActiveHoldings         []Investment    `json:"activeHoldings"`
	InvestmentDistribution Diversification `json:"investmentDistribution"`
}
