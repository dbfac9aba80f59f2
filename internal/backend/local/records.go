// Package local is a database-backed implementation of the bond registry
// contract. It serves development and tests; production deployments point at
// the remote registry instead. Unlike the rest of the service, this package
// owns durable state, so it is also where the registry's invariants (minimum
// investment, active-only investing, stable ids) are actually enforced.
package local

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"bondbazaar/internal/models"
)

// BondRecord is the persisted form of a bond listing. The auto-incremented
// primary key doubles as the stable 1-based registry id.
type BondRecord struct {
	ID                 uint   `gorm:"primaryKey"`
	Issuer             string `gorm:"not null"`
	RatingAgency       string `gorm:"not null"`
	Rating             int    `gorm:"not null"`
	CouponRate         int64  `gorm:"not null"`
	CouponKind         string `gorm:"not null"`
	CouponFixedRate    int64
	TenureMonths       int64  `gorm:"not null"`
	FaceValue          int64  `gorm:"type:bigint;not null"`
	MinInvestment      int64  `gorm:"type:bigint;not null"`
	RepaymentFrequency string `gorm:"not null"`
	RedemptionType     string `gorm:"not null"`
	RiskTags           string `gorm:"not null"` // comma-separated, display order preserved
	StatusKind         string `gorm:"not null"`
	MaturedAt          int64
	LaunchDate         int64 `gorm:"type:bigint;not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// InvestmentRecord is a persisted investment holding.
type InvestmentRecord struct {
	ID            uint   `gorm:"primaryKey"`
	Principal     string `gorm:"index;not null"`
	BondID        uint   `gorm:"not null"`
	Amount        int64  `gorm:"type:bigint;not null"`
	InvestedOn    int64  `gorm:"type:bigint;not null"`
	IsActive      bool   `gorm:"not null;default:true"`
	PlanKind      string `gorm:"not null"`
	PlanAmount    int64
	PlanRiskLevel string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Repayments []RepaymentRecord `gorm:"foreignKey:InvestmentID"`
}

// RepaymentRecord is one scheduled repayment of an investment.
type RepaymentRecord struct {
	ID                 uint   `gorm:"primaryKey"`
	InvestmentID       uint   `gorm:"index;not null"`
	Sequence           int    `gorm:"not null"`
	DueDate            int64  `gorm:"type:bigint;not null"`
	Amount             int64  `gorm:"type:bigint;not null"`
	PrincipalComponent int64  `gorm:"type:bigint;not null"`
	InterestAmount     int64  `gorm:"type:bigint;not null"`
	Status             string `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProfileRecord is a persisted user profile keyed by principal.
type ProfileRecord struct {
	Principal   string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Email       string `gorm:"not null"`
	PhoneNumber string
	KYCStatus   string `gorm:"not null"`
	Role        string `gorm:"not null;default:'user'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AllRecords lists every record type for auto-migration.
func AllRecords() []interface{} {
	return []interface{}{
		&BondRecord{},
		&InvestmentRecord{},
		&RepaymentRecord{},
		&ProfileRecord{},
	}
}

// toListing converts a record to the wire-level listing.
func (r *BondRecord) toListing() models.BondListing {
	return models.BondListing{
		Issuer:             r.Issuer,
		RatingAgency:       r.RatingAgency,
		Rating:             r.Rating,
		CouponRate:         r.CouponRate,
		CouponType:         models.CouponType{Kind: models.CouponTypeKind(r.CouponKind), Rate: r.CouponFixedRate},
		Tenure:             r.TenureMonths,
		FaceValue:          r.FaceValue,
		MinInvestment:      r.MinInvestment,
		RepaymentFrequency: models.RepaymentFrequency(r.RepaymentFrequency),
		RedemptionType:     models.RedemptionType(r.RedemptionType),
		RiskTags:           splitTags(r.RiskTags),
		Status:             models.BondStatus{Kind: models.BondStatusKind(r.StatusKind), MaturedAt: r.MaturedAt},
		LaunchDate:         r.LaunchDate,
		Diversification:    models.ByAmount(r.MinInvestment),
	}
}

func splitTags(s string) []models.RiskTag {
	if s == "" {
		return []models.RiskTag{}
	}
	parts := strings.Split(s, ",")
	tags := make([]models.RiskTag, len(parts))
	for i, p := range parts {
		tags[i] = models.RiskTag(p)
	}
	return tags
}

func joinTags(tags []models.RiskTag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

// toInvestment converts a record (with repayments loaded) to the wire shape.
func (r *InvestmentRecord) toInvestment() models.Investment {
	repayments := make([]models.Repayment, len(r.Repayments))
	for i := range r.Repayments {
		rp := &r.Repayments[i]
		repayments[i] = models.Repayment{
			DueDate:            rp.DueDate,
			Amount:             rp.Amount,
			PrincipalComponent: rp.PrincipalComponent,
			InterestAmount:     rp.InterestAmount,
			Status:             models.RepaymentStatus(rp.Status),
		}
	}
	return models.Investment{
		BondID:     int(r.BondID),
		Amount:     r.Amount,
		InvestedOn: r.InvestedOn,
		IsActive:   r.IsActive,
		InvestmentPlan: models.Diversification{
			Kind:      models.DiversificationKind(r.PlanKind),
			Amount:    r.PlanAmount,
			RiskLevel: r.PlanRiskLevel,
		},
		Repayments: repayments,
	}
}

// recordFromListing builds a persistable record from a listing.
func recordFromListing(b models.BondListing) BondRecord {
	return BondRecord{
		Issuer:             b.Issuer,
		RatingAgency:       b.RatingAgency,
		Rating:             b.Rating,
		CouponRate:         b.CouponRate,
		CouponKind:         string(b.CouponType.Kind),
		CouponFixedRate:    b.CouponType.Rate,
		TenureMonths:       b.Tenure,
		FaceValue:          b.FaceValue,
		MinInvestment:      b.MinInvestment,
		RepaymentFrequency: string(b.RepaymentFrequency),
		RedemptionType:     string(b.RedemptionType),
		RiskTags:           joinTags(b.RiskTags),
		StatusKind:         string(b.Status.Kind),
		MaturedAt:          b.Status.MaturedAt,
		LaunchDate:         b.LaunchDate,
	}
}

// AutoMigrate migrates all registry tables. SQLite development and test
// databases use this; PostgreSQL deployments run SQL migrations instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllRecords()...)
}
