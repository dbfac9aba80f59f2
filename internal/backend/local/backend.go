package local

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"bondbazaar/internal/backend"
	apperrors "bondbazaar/internal/errors"
	"bondbazaar/internal/format"
	"bondbazaar/internal/models"
)

// Backend implements the registry contract on top of a GORM database.
type Backend struct {
	db *gorm.DB
}

// New creates a local registry backed by the given database.
func New(db *gorm.DB) *Backend {
	return &Backend{db: db}
}

var _ backend.Client = (*Backend)(nil)

// GetBondListings returns all listings in registry-id order.
func (b *Backend) GetBondListings(ctx context.Context) ([]models.BondListing, error) {
	var records []BondRecord
	if err := b.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	listings := make([]models.BondListing, len(records))
	for i := range records {
		listings[i] = records[i].toListing()
	}
	return listings, nil
}

// GetBondListingsWithIDs returns all listings paired with their stable ids.
func (b *Backend) GetBondListingsWithIDs(ctx context.Context) ([]models.BondListingWithID, error) {
	var records []BondRecord
	if err := b.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	listings := make([]models.BondListingWithID, len(records))
	for i := range records {
		listings[i] = models.BondListingWithID{
			BondID:  int(records[i].ID),
			Listing: records[i].toListing(),
		}
	}
	return listings, nil
}

// GetBondListing returns one listing by registry id.
func (b *Backend) GetBondListing(ctx context.Context, bondID int) (*models.BondListing, error) {
	record, err := b.findBond(ctx, bondID)
	if err != nil {
		return nil, err
	}
	listing := record.toListing()
	return &listing, nil
}

func (b *Backend) findBond(ctx context.Context, bondID int) (*BondRecord, error) {
	if bondID < 1 {
		return nil, apperrors.ErrBondNotFound
	}
	var record BondRecord
	if err := b.db.WithContext(ctx).First(&record, bondID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBondNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// GetUserPortfolio aggregates the caller's holdings.
func (b *Backend) GetUserPortfolio(ctx context.Context, principal string) (*models.PortfolioSummary, error) {
	var records []InvestmentRecord
	if err := b.db.WithContext(ctx).
		Preload("Repayments", func(db *gorm.DB) *gorm.DB { return db.Order("sequence ASC") }).
		Where("principal = ?", principal).
		Order("invested_on ASC").
		Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &models.PortfolioSummary{
		ActiveHoldings: []models.Investment{},
	}
	var total int64
	for i := range records {
		inv := records[i].toInvestment()
		if inv.IsActive {
			total += inv.Amount
			summary.ActiveHoldings = append(summary.ActiveHoldings, inv)
		}
	}
	summary.TotalInvested = total
	summary.InvestmentDistribution = models.ByAmount(total)
	return summary, nil
}

// Invest places an investment after enforcing the registry invariants:
// the bond must exist, be active, and the amount must meet its minimum.
func (b *Backend) Invest(ctx context.Context, principal string, bondID int, amount int64, plan models.Diversification) error {
	record, err := b.findBond(ctx, bondID)
	if err != nil {
		return err
	}
	if record.StatusKind != string(models.BondStatusActive) {
		return apperrors.ErrBondNotActive
	}
	if amount < record.MinInvestment {
		return apperrors.WithMessage(apperrors.ErrBelowMinimum,
			"Minimum investment is "+format.Currency(record.MinInvestment))
	}

	now := time.Now()
	investment := InvestmentRecord{
		Principal:     principal,
		BondID:        record.ID,
		Amount:        amount,
		InvestedOn:    now.UnixNano(),
		IsActive:      true,
		PlanKind:      string(plan.Kind),
		PlanAmount:    plan.Amount,
		PlanRiskLevel: plan.RiskLevel,
	}

	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&investment).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		schedule := buildSchedule(record, amount, now)
		for i := range schedule {
			schedule[i].InvestmentID = investment.ID
		}
		if len(schedule) > 0 {
			if err := tx.Create(&schedule).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
}

// buildSchedule generates the repayment schedule for an investment. Coupon
// interest accrues per period; principal returns according to the bond's
// redemption type (bullet and prepayment bonds return it all at maturity,
// staggered bonds return it in equal installments with the remainder on the
// final payment). Zero-coupon bonds pay a single repayment at maturity.
func buildSchedule(bond *BondRecord, amount int64, investedAt time.Time) []RepaymentRecord {
	tenure := int(bond.TenureMonths)
	if tenure <= 0 {
		return nil
	}

	if bond.CouponKind == string(models.CouponZero) {
		// Single accreted payment at maturity.
		interest := amount * bond.CouponRate * bond.TenureMonths / (10000 * 12)
		due := investedAt.AddDate(0, tenure, 0)
		return []RepaymentRecord{{
			Sequence:           1,
			DueDate:            due.UnixNano(),
			Amount:             amount + interest,
			PrincipalComponent: amount,
			InterestAmount:     interest,
			Status:             string(models.RepaymentPending),
		}}
	}

	interval := monthsPerPeriod(models.RepaymentFrequency(bond.RepaymentFrequency))
	periods := tenure / interval
	if periods == 0 {
		periods = 1
		interval = tenure
	}

	interestPerPeriod := amount * bond.CouponRate * int64(interval) / (10000 * 12)

	staggered := bond.RedemptionType == string(models.RedemptionStaggered)
	var principalPerPeriod int64
	if staggered {
		principalPerPeriod = amount / int64(periods)
	}

	schedule := make([]RepaymentRecord, periods)
	var principalPaid int64
	for i := 0; i < periods; i++ {
		principal := int64(0)
		if staggered {
			principal = principalPerPeriod
		}
		if i == periods-1 {
			// Final payment carries the outstanding principal, covering
			// both bullet redemption and staggered rounding remainders.
			principal = amount - principalPaid
		}
		principalPaid += principal

		due := investedAt.AddDate(0, (i+1)*interval, 0)
		schedule[i] = RepaymentRecord{
			Sequence:           i + 1,
			DueDate:            due.UnixNano(),
			Amount:             principal + interestPerPeriod,
			PrincipalComponent: principal,
			InterestAmount:     interestPerPeriod,
			Status:             string(models.RepaymentPending),
		}
	}
	return schedule
}

func monthsPerPeriod(f models.RepaymentFrequency) int {
	switch f {
	case models.RepaymentMonthly:
		return 1
	case models.RepaymentQuarterly:
		return 3
	case models.RepaymentAnnually:
		return 12
	default:
		return 12
	}
}

// GetUserProfile returns the caller's profile.
func (b *Backend) GetUserProfile(ctx context.Context, principal string) (*models.UserProfile, error) {
	var record ProfileRecord
	if err := b.db.WithContext(ctx).First(&record, "principal = ?", principal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &models.UserProfile{
		Name:        record.Name,
		Email:       record.Email,
		PhoneNumber: record.PhoneNumber,
		KYCStatus:   models.KYCStatus(record.KYCStatus),
	}, nil
}

// SaveUserProfile creates or replaces the caller's profile. New profiles
// start with a pending KYC status unless one is supplied.
func (b *Backend) SaveUserProfile(ctx context.Context, principal string, profile models.UserProfile) error {
	kyc := profile.KYCStatus
	if kyc == "" {
		kyc = models.KYCPending
	}

	var existing ProfileRecord
	err := b.db.WithContext(ctx).First(&existing, "principal = ?", principal).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record := ProfileRecord{
			Principal:   principal,
			Name:        profile.Name,
			Email:       profile.Email,
			PhoneNumber: profile.PhoneNumber,
			KYCStatus:   string(kyc),
			Role:        string(models.RoleUser),
		}
		if err := b.db.WithContext(ctx).Create(&record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	case err != nil:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]interface{}{
		"name":         profile.Name,
		"email":        profile.Email,
		"phone_number": profile.PhoneNumber,
		"kyc_status":   string(kyc),
	}
	if err := b.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetUserRole returns the caller's role. Principals without a profile are
// guests.
func (b *Backend) GetUserRole(ctx context.Context, principal string) (models.UserRole, error) {
	var record ProfileRecord
	if err := b.db.WithContext(ctx).First(&record, "principal = ?", principal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoleGuest, nil
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return models.UserRole(record.Role), nil
}

// InitializeDefaultBonds seeds the default catalog. It is idempotent: a
// registry that already has bonds is left untouched.
func (b *Backend) InitializeDefaultBonds(ctx context.Context) error {
	var count int64
	if err := b.db.WithContext(ctx).Model(&BondRecord{}).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil
	}

	records := make([]BondRecord, len(defaultBonds))
	for i, listing := range defaultBonds {
		records[i] = recordFromListing(listing)
	}
	if err := b.db.WithContext(ctx).Create(&records).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
