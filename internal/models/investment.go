package models

// RepaymentStatus is the settlement state of a scheduled repayment.
type RepaymentStatus string

const (
	RepaymentPending   RepaymentStatus = "pending"
	RepaymentPaid      RepaymentStatus = "paid"
	RepaymentOverdue   RepaymentStatus = "overdue"
	RepaymentDefaulted RepaymentStatus = "defaulted"
)

// Repayment is one scheduled repayment of an investment.
type Repayment struct {
	DueDate            int64           `json:"dueDate"`
	Amount             int64           `json:"amount"`
	PrincipalComponent int64           `json:"principalComponent"`
	InterestAmount     int64           `json:"interestAmount"`
	Status             RepaymentStatus `json:"status"`
}

// Investment is a user's holding in a bond, with its repayment schedule.
// BondID references a registry listing; the investment does not own it.
type Investment struct {
	BondID         int             `json:"bondId"`
	Amount         int64           `json:"amount"`
	InvestedOn     int64           `json:"investedOn"`
	IsActive       bool            `json:"isActive"`
	InvestmentPlan Diversification `json:"investmentPlan"`
	Repayments     []Repayment     `json:"repayments"`
}
