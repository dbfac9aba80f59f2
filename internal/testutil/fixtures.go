package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"bondbazaar/internal/backend/local"
	"bondbazaar/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestBond creates an active bond with sensible defaults and returns
// its registry id.
func CreateTestBond(t *testing.T, db *gorm.DB) int {
	t.Helper()
	return CreateTestBondWith(t, db, BondParams{})
}

// BondParams overrides selected bond fields; zero values fall back to
// defaults.
type BondParams struct {
	Issuer        string
	CouponRate    int64
	Tenure        int64
	MinInvestment int64
	RiskTags      []models.RiskTag
	Status        models.BondStatusKind
	Frequency     models.RepaymentFrequency
	Redemption    models.RedemptionType
}

// CreateTestBondWith creates a bond with the given overrides and returns its
// registry id.
func CreateTestBondWith(t *testing.T, db *gorm.DB, p BondParams) int {
	t.Helper()

	if p.Issuer == "" {
		p.Issuer = fmt.Sprintf("Test Issuer %d", nextID())
	}
	if p.CouponRate == 0 {
		p.CouponRate = 1000
	}
	if p.Tenure == 0 {
		p.Tenure = 24
	}
	if p.MinInvestment == 0 {
		p.MinInvestment = 10000
	}
	if p.RiskTags == nil {
		p.RiskTags = []models.RiskTag{models.RiskTagSecured}
	}
	if p.Status == "" {
		p.Status = models.BondStatusActive
	}
	if p.Frequency == "" {
		p.Frequency = models.RepaymentQuarterly
	}
	if p.Redemption == "" {
		p.Redemption = models.RedemptionBullet
	}

	record := local.BondRecord{
		Issuer:             p.Issuer,
		RatingAgency:       "CRISIL",
		Rating:             'A',
		CouponRate:         p.CouponRate,
		CouponKind:         string(models.CouponFixed),
		CouponFixedRate:    p.CouponRate,
		TenureMonths:       p.Tenure,
		FaceValue:          1000,
		MinInvestment:      p.MinInvestment,
		RepaymentFrequency: string(p.Frequency),
		RedemptionType:     string(p.Redemption),
		RiskTags:           tagsCSV(p.RiskTags),
		StatusKind:         string(p.Status),
		LaunchDate:         time.Now().UnixNano(),
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to create test bond: %v", err)
	}
	return int(record.ID)
}

func tagsCSV(tags []models.RiskTag) string {
	out := ""
	for i, tag := range tags {
		if i > 0 {
			out += ","
		}
		out += string(tag)
	}
	return out
}

// CreateTestInvestment creates an investment for the given principal and
// bond.
func CreateTestInvestment(t *testing.T, db *gorm.DB, principal string, bondID int, amount int64, active bool) {
	t.Helper()

	record := local.InvestmentRecord{
		Principal:  principal,
		BondID:     uint(bondID),
		Amount:     amount,
		InvestedOn: time.Now().UnixNano(),
		IsActive:   active,
		PlanKind:   string(models.DiversificationByAmount),
		PlanAmount: amount,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
}

// CreateTestProfile creates a verified profile for the given principal.
func CreateTestProfile(t *testing.T, db *gorm.DB, principal string) {
	t.Helper()

	record := local.ProfileRecord{
		Principal:   principal,
		Name:        fmt.Sprintf("Test User %d", nextID()),
		Email:       fmt.Sprintf("user%d@test.com", nextID()),
		PhoneNumber: "+919876543210",
		KYCStatus:   string(models.KYCVerified),
		Role:        string(models.RoleUser),
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
}
