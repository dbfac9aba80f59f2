package local

import (
	"time"

	"bondbazaar/internal/models"
)

func launch(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).UnixNano()
}

// defaultBonds is the catalog seeded by InitializeDefaultBonds. Rates are
// basis points, amounts integer INR, tenures in months.
var defaultBonds = []models.BondListing{
	{
		Issuer:             "Muthoot Finance",
		RatingAgency:       "CRISIL",
		Rating:             'A',
		CouponRate:         925,
		CouponType:         models.CouponType{Kind: models.CouponFixed, Rate: 925},
		Tenure:             24,
		FaceValue:          1000,
		MinInvestment:      10000,
		RepaymentFrequency: models.RepaymentMonthly,
		RedemptionType:     models.RedemptionBullet,
		RiskTags:           []models.RiskTag{models.RiskTagSecured},
		Status:             models.BondStatus{Kind: models.BondStatusActive},
		LaunchDate:         launch(2024, time.April, 8),
	},
	{
		Issuer:             "Shriram Finance",
		RatingAgency:       "ICRA",
		Rating:             'A',
		CouponRate:         1050,
		CouponType:         models.CouponType{Kind: models.CouponFixed, Rate: 1050},
		Tenure:             36,
		FaceValue:          1000,
		MinInvestment:      25000,
		RepaymentFrequency: models.RepaymentQuarterly,
		RedemptionType:     models.RedemptionStaggered,
		RiskTags:           []models.RiskTag{models.RiskTagSecured, models.RiskTagSeniorSecured},
		Status:             models.BondStatus{Kind: models.BondStatusActive},
		LaunchDate:         launch(2024, time.June, 17),
	},
	{
		Issuer:             "Navi Finserv",
		RatingAgency:       "CRISIL",
		Rating:             'A',
		CouponRate:         1075,
		CouponType:         models.CouponType{Kind: models.CouponFixed, Rate: 1075},
		Tenure:             18,
		FaceValue:          10000,
		MinInvestment:      10000,
		RepaymentFrequency: models.RepaymentMonthly,
		RedemptionType:     models.RedemptionStaggered,
		RiskTags:           []models.RiskTag{models.RiskTagSecuredByMovableAssets},
		Status:             models.BondStatus{Kind: models.BondStatusActive},
		LaunchDate:         launch(2024, time.September, 2),
	},
	{
		Issuer:             "Piramal Capital",
		RatingAgency:       "CARE",
		Rating:             'B',
		CouponRate:         1150,
		CouponType:         models.CouponType{Kind: models.CouponFixed, Rate: 1150},
		Tenure:             48,
		FaceValue:          1000,
		MinInvestment:      50000,
		RepaymentFrequency: models.RepaymentAnnually,
		RedemptionType:     models.RedemptionBullet,
		RiskTags:           []models.RiskTag{models.RiskTagUnsecured},
		Status:             models.BondStatus{Kind: models.BondStatusActive},
		LaunchDate:         launch(2024, time.November, 11),
	},
	{
		Issuer:             "IIFL Home Finance",
		RatingAgency:       "CRISIL",
		Rating:             'A',
		CouponRate:         880,
		CouponType:         models.CouponType{Kind: models.CouponFixed, Rate: 880},
		Tenure:             12,
		FaceValue:          1000,
		MinInvestment:      5000,
		RepaymentFrequency: models.RepaymentQuarterly,
		RedemptionType:     models.RedemptionPrepayment,
		RiskTags:           []models.RiskTag{models.RiskTagSecured},
		Status:             models.BondStatus{Kind: models.BondStatusActive},
		LaunchDate:         launch(2025, time.January, 20),
	},
	{
		Issuer:             "Ugro Capital",
		RatingAgency:       "ICRA",
		Rating:             'C',
		CouponRate:         1240,
		CouponType:         models.CouponType{Kind: models.CouponZero},
		Tenure:             30,
		FaceValue:          10000,
		MinInvestment:      20000,
		RepaymentFrequency: models.RepaymentAnnually,
		RedemptionType:     models.RedemptionBullet,
		RiskTags:           []models.RiskTag{models.RiskTagUnsecured},
		Status:             models.BondStatus{Kind: models.BondStatusActive},
		LaunchDate:         launch(2025, time.March, 5),
	},
	{
		Issuer:             "Ess Kay Fincorp",
		RatingAgency:       "CARE",
		Rating:             'B',
		CouponRate:         1120,
		CouponType:         models.CouponType{Kind: models.CouponFixed, Rate: 1120},
		Tenure:             24,
		FaceValue:          1000,
		MinInvestment:      15000,
		RepaymentFrequency: models.RepaymentMonthly,
		RedemptionType:     models.RedemptionStaggered,
		RiskTags:           []models.RiskTag{models.RiskTagSecuredByMovableAssets, models.RiskTagSecured},
		Status:             models.BondStatus{Kind: models.BondStatusMatured, MaturedAt: launch(2025, time.July, 1)},
		LaunchDate:         launch(2023, time.July, 1),
	},
}
