package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bondbazaar/internal/catalog"
	apperrors "bondbazaar/internal/errors"
	"bondbazaar/internal/format"
	"bondbazaar/internal/models"
	"bondbazaar/internal/pagination"
	"bondbazaar/internal/queries"
)

// BondHandler serves the bond catalog and detail views.
type BondHandler struct {
	store *queries.Store
}

// NewBondHandler creates a new BondHandler.
func NewBondHandler(store *queries.Store) *BondHandler {
	return &BondHandler{store: store}
}

// ListBondsRequest represents the catalog query parameters.
type ListBondsRequest struct {
	Search   string   `form:"search" binding:"max=100"`
	RiskTags []string `form:"risk_tags" binding:"omitempty,dive,risk_tag"`
	Sort     string   `form:"sort" binding:"omitempty,sort_key"`
	pagination.PageRequest
}

// BondCardResponse is one catalog entry with display-ready fields.
type BondCardResponse struct {
	BondID        int      `json:"bond_id"`
	Issuer        string   `json:"issuer"`
	Rating        string   `json:"rating"`
	RatingAgency  string   `json:"rating_agency"`
	RatingTone    string   `json:"rating_tone"`
	CouponRate    string   `json:"coupon_rate"`
	Tenure        string   `json:"tenure"`
	MinInvestment string   `json:"min_investment"`
	RiskTags      []string `json:"risk_tags"`
	Status        string   `json:"status"`
	Active        bool     `json:"active"`
}

// BondDetailResponse is the full detail view of one bond.
type BondDetailResponse struct {
	BondCardResponse
	CouponType         string `json:"coupon_type"`
	FaceValue          string `json:"face_value"`
	RepaymentFrequency string `json:"repayment_frequency"`
	RedemptionType     string `json:"redemption_type"`
	LaunchDate         string `json:"launch_date"`
	MinInvestmentValue int64  `json:"min_investment_value"`
}

func bondCard(bondID int, b *models.BondListing) BondCardResponse {
	tags := make([]string, len(b.RiskTags))
	for i, tag := range b.RiskTags {
		tags[i] = format.RiskTagLabel(tag)
	}
	return BondCardResponse{
		BondID:        bondID,
		Issuer:        b.Issuer,
		Rating:        format.RatingGrade(b.Rating),
		RatingAgency:  b.RatingAgency,
		RatingTone:    format.RatingTone(b.Rating),
		CouponRate:    format.CouponRate(b.CouponRate),
		Tenure:        format.Tenure(b.Tenure),
		MinInvestment: format.Currency(b.MinInvestment),
		RiskTags:      tags,
		Status:        format.StatusLabel(b.Status),
		Active:        b.IsActive(),
	}
}

// ListBonds returns the filtered, sorted, paginated bond catalog.
// @Summary     List bonds
// @Description Browse the bond catalog with optional issuer search, risk tag filters, and sorting
// @Tags        bonds
// @Produce     json
// @Param       search query string false "Issuer name search"
// @Param       risk_tags query []string false "Risk tag filter" collectionFormat(multi)
// @Param       sort query string false "Sort key" Enums(coupon-desc, coupon-asc, tenure-asc, tenure-desc, min-investment-asc, min-investment-desc)
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[BondCardResponse]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Registry unavailable"
// @Router      /bonds [get]
func (h *BondHandler) ListBonds(c *gin.Context) {
	var req ListBondsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	req.Defaults()

	sortKey, _ := catalog.ParseSortKey(req.Sort)
	filter := catalog.Filter{
		SearchQuery: req.Search,
		SortKey:     sortKey,
	}
	if len(req.RiskTags) > 0 {
		filter.RiskTags = make(map[models.RiskTag]bool, len(req.RiskTags))
		for _, tag := range req.RiskTags {
			filter.RiskTags[models.RiskTag(tag)] = true
		}
	}

	bonds, err := h.store.BondListingsWithIDs(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	derived := catalog.DeriveWithIDs(bonds, filter)
	cards := make([]BondCardResponse, len(derived))
	for i := range derived {
		cards[i] = bondCard(derived[i].BondID, &derived[i].Listing)
	}

	c.JSON(http.StatusOK, pagination.Page(cards, req.PageRequest))
}

// GetBond returns one bond's detail view.
// @Summary     Get bond detail
// @Description Full detail view of a single bond listing
// @Tags        bonds
// @Produce     json
// @Param       id path int true "Bond id"
// @Success     200 {object} BondDetailResponse
// @Failure     400 {object} ErrorResponse "Invalid bond id"
// @Failure     404 {object} ErrorResponse "Bond not found"
// @Failure     502 {object} ErrorResponse "Registry unavailable"
// @Router      /bonds/{id} [get]
func (h *BondHandler) GetBond(c *gin.Context) {
	bondID, err := parseBondID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	listing, err := h.store.BondListing(c.Request.Context(), bondID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BondDetailResponse{
		BondCardResponse:   bondCard(bondID, listing),
		CouponType:         format.CouponTypeLabel(listing.CouponType),
		FaceValue:          format.Currency(listing.FaceValue),
		RepaymentFrequency: format.FrequencyLabel(listing.RepaymentFrequency),
		RedemptionType:     format.RedemptionLabel(listing.RedemptionType),
		LaunchDate:         format.Date(listing.LaunchDate),
		MinInvestmentValue: listing.MinInvestment,
	})
}
