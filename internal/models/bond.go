package models

// RiskTag classifies the security backing of a bond.
type RiskTag string

const (
	RiskTagSecured                RiskTag = "secured"
	RiskTagUnsecured              RiskTag = "unsecured"
	RiskTagSeniorSecured          RiskTag = "seniorSecured"
	RiskTagSecuredByMovableAssets RiskTag = "securedByMovableAssets"
)

// RepaymentFrequency is how often coupon repayments are made.
type RepaymentFrequency string

const (
	RepaymentMonthly   RepaymentFrequency = "monthly"
	RepaymentQuarterly RepaymentFrequency = "quarterly"
	RepaymentAnnually  RepaymentFrequency = "annually"
)

// RedemptionType is how principal is returned to investors.
type RedemptionType string

const (
	RedemptionBullet     RedemptionType = "bulletRepayment"
	RedemptionStaggered  RedemptionType = "staggeredRedemption"
	RedemptionPrepayment RedemptionType = "prepayment"
)

// BondStatusKind discriminates the bond status union.
type BondStatusKind string

const (
	BondStatusActive        BondStatusKind = "active"
	BondStatusMatured       BondStatusKind = "matured"
	BondStatusFullyRedeemed BondStatusKind = "fullyRedeemed"
	BondStatusDefaulted     BondStatusKind = "defaulted"
)

// BondStatus is a tagged union. MaturedAt carries the maturity timestamp
// (nanoseconds since epoch) and is only meaningful when Kind is matured.
type BondStatus struct {
	Kind      BondStatusKind `json:"kind"`
	MaturedAt int64          `json:"maturedAt,omitempty"`
}

// CouponTypeKind discriminates the coupon type union.
type CouponTypeKind string

const (
	CouponZero  CouponTypeKind = "zeroCoupon"
	CouponFixed CouponTypeKind = "coupon"
)

// CouponType is a tagged union. Rate carries the fixed coupon in basis
// points and is only meaningful when Kind is coupon.
type CouponType struct {
	Kind CouponTypeKind `json:"kind"`
	Rate int64          `json:"rate,omitempty"`
}

// DiversificationKind discriminates the diversification union.
type DiversificationKind string

const (
	DiversificationByAmount    DiversificationKind = "investmentAmount"
	DiversificationByRiskLevel DiversificationKind = "riskLevel"
)

// Diversification describes how an investment amount is allocated: by an
// absolute amount or by a named risk-level target.
type Diversification struct {
	Kind      DiversificationKind `json:"kind"`
	Amount    int64               `json:"amount,omitempty"`
	RiskLevel string              `json:"riskLevel,omitempty"`
}

// ByAmount builds an amount-allocated diversification.
func ByAmount(amount int64) Diversification {
	return Diversification{Kind: DiversificationByAmount, Amount: amount}
}

// BondListing is a bond offering as published by the registry backend.
// Monetary values are integer INR (no paise), coupon rates are integer basis
// points (1050 = 10.50%), tenure is in months, and timestamps are nanoseconds
// since epoch. The rating is a single-character code stored as its numeric
// code point; display conversion belongs to the format package.
type BondListing struct {
	Issuer             string             `json:"issuer"`
	RatingAgency       string             `json:"ratingAgency"`
	Rating             int                `json:"rating"`
	CouponRate         int64              `json:"couponRate"`
	CouponType         CouponType         `json:"couponType"`
	Tenure             int64              `json:"tenure"`
	FaceValue          int64              `json:"faceValue"`
	MinInvestment      int64              `json:"minInvestment"`
	RepaymentFrequency RepaymentFrequency `json:"repaymentFrequency"`
	RedemptionType     RedemptionType     `json:"redemptionType"`
	RiskTags           []RiskTag          `json:"riskTags"`
	Status             BondStatus         `json:"status"`
	LaunchDate         int64              `json:"launchDate"`
	Diversification    Diversification    `json:"diversification"`
}

// IsActive reports whether the bond is open for investment.
func (b *BondListing) IsActive() bool {
	return b.Status.Kind == BondStatusActive
}

// BondListingWithID pairs a listing with its stable 1-based registry id.
// The registry owns id assignment; this service never invents ids.
type BondListingWithID struct {
	BondID  int         `json:"bondId"`
	Listing BondListing `json:"listing"`
}
