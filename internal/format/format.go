// Package format converts raw registry values into display strings.
// All functions are pure and use a fixed locale: Indian English, INR with no
// fractional digits, Indian digit grouping.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bondbazaar/internal/models"
)

// Currency formats an integer INR amount with Indian digit grouping,
// e.g. 1050000 -> "₹10,50,000".
func Currency(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "₹" + groupIndian(strconv.FormatInt(amount, 10))
}

// groupIndian inserts Indian-style separators: the last three digits form one
// group, every preceding pair forms another.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := digits[:n-3]
	for len(head) > 2 {
		cut := len(head) % 2
		if cut == 0 {
			cut = 2
		}
		b.WriteString(head[:cut])
		b.WriteByte(',')
		head = head[cut:]
	}
	b.WriteString(head)
	b.WriteByte(',')
	b.WriteString(digits[n-3:])
	return b.String()
}

// CouponRate formats an integer basis-point rate, e.g. 1050 -> "10.50%".
func CouponRate(bps int64) string {
	return fmt.Sprintf("%d.%02d%%", bps/100, bps%100)
}

// Tenure formats a month count: "6 months", "1 year" when evenly divisible
// by twelve, otherwise "1y 6m".
func Tenure(months int64) string {
	if months < 12 {
		if months == 1 {
			return "1 month"
		}
		return fmt.Sprintf("%d months", months)
	}
	years := months / 12
	rem := months % 12
	if rem == 0 {
		if years == 1 {
			return "1 year"
		}
		return fmt.Sprintf("%d years", years)
	}
	return fmt.Sprintf("%dy %dm", years, rem)
}

// Registry timestamps are nanoseconds since epoch; divide by 1e6 before
// converting to a millisecond-based date.
func fromNanos(ns int64) time.Time {
	return time.UnixMilli(ns / 1_000_000)
}

// Date formats a nanosecond timestamp as a short date, e.g. "15 Mar 2025".
func Date(ns int64) string {
	return fromNanos(ns).Format("2 Jan 2006")
}

// DateTime formats a nanosecond timestamp with time of day.
func DateTime(ns int64) string {
	return fromNanos(ns).Format("2 Jan 2006, 03:04 PM")
}

// RatingGrade converts a numeric rating code point to its display character.
func RatingGrade(rating int) string {
	return string(rune(rating))
}

// RatingTone maps a rating code to a display tone. Codes outside {A,B,C}
// get a neutral tone, not an error.
func RatingTone(rating int) string {
	switch rune(rating) {
	case 'A':
		return "strong"
	case 'B':
		return "stable"
	case 'C':
		return "moderate"
	default:
		return "neutral"
	}
}

// RiskTagLabel returns the display label for a risk tag.
func RiskTagLabel(tag models.RiskTag) string {
	switch tag {
	case models.RiskTagSecured:
		return "Secured"
	case models.RiskTagUnsecured:
		return "Unsecured"
	case models.RiskTagSeniorSecured:
		return "Senior Secured"
	case models.RiskTagSecuredByMovableAssets:
		return "Asset-Backed"
	default:
		return string(tag)
	}
}

// FrequencyLabel returns the display label for a repayment frequency.
func FrequencyLabel(f models.RepaymentFrequency) string {
	switch f {
	case models.RepaymentMonthly:
		return "Monthly"
	case models.RepaymentQuarterly:
		return "Quarterly"
	case models.RepaymentAnnually:
		return "Annually"
	default:
		return string(f)
	}
}

// RedemptionLabel returns the display label for a redemption type.
func RedemptionLabel(r models.RedemptionType) string {
	switch r {
	case models.RedemptionBullet:
		return "Bullet Repayment"
	case models.RedemptionStaggered:
		return "Staggered Redemption"
	case models.RedemptionPrepayment:
		return "Prepayment"
	default:
		return string(r)
	}
}

// StatusLabel returns the display label for a bond status.
func StatusLabel(s models.BondStatus) string {
	switch s.Kind {
	case models.BondStatusActive:
		return "Active"
	case models.BondStatusMatured:
		return "Matured on " + Date(s.MaturedAt)
	case models.BondStatusFullyRedeemed:
		return "Fully Redeemed"
	case models.BondStatusDefaulted:
		return "Defaulted"
	default:
		return "Unknown"
	}
}

// CouponTypeLabel returns the display label for a coupon type.
func CouponTypeLabel(c models.CouponType) string {
	switch c.Kind {
	case models.CouponZero:
		return "Zero Coupon"
	case models.CouponFixed:
		return CouponRate(c.Rate) + " Fixed"
	default:
		return "Unknown"
	}
}

// RepaymentStatusLabel returns the display label for a repayment status.
func RepaymentStatusLabel(s models.RepaymentStatus) string {
	switch s {
	case models.RepaymentPending:
		return "Pending"
	case models.RepaymentPaid:
		return "Paid"
	case models.RepaymentOverdue:
		return "Overdue"
	case models.RepaymentDefaulted:
		return "Defaulted"
	default:
		return string(s)
	}
}

// KYCLabel returns the display label for a KYC status.
func KYCLabel(s models.KYCStatus) string {
	switch s {
	case models.KYCVerified:
		return "Verified"
	case models.KYCPending:
		return "Verification Pending"
	case models.KYCRejected:
		return "Rejected"
	default:
		return string(s)
	}
}
