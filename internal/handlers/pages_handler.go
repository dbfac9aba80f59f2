package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PagesHandler serves the static informational pages as view models. The
// content lives here rather than in a CMS; these pages change with releases.
type PagesHandler struct{}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// PageSection is one titled block of page content.
type PageSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PageResponse is a static page view model.
type PageResponse struct {
	Title    string        `json:"title"`
	Sections []PageSection `json:"sections"`
}

// Home returns the landing page content.
// @Summary     Landing page
// @Tags        pages
// @Produce     json
// @Success     200 {object} PageResponse
// @Router      /pages/home [get]
func (h *PagesHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, PageResponse{
		Title: "Invest in bonds, simply",
		Sections: []PageSection{
			{Title: "Curated corporate bonds", Body: "Browse rated corporate bonds from established issuers, with clear coupon, tenure, and minimum investment terms."},
			{Title: "Predictable returns", Body: "Fixed coupon payouts on a published schedule. Know what you earn and when you earn it before you invest."},
			{Title: "Start small", Body: "Minimum investments from ₹10,000. Build a fixed-income allocation one bond at a time."},
		},
	})
}

// HowItWorks returns the how-it-works page content.
// @Summary     How it works
// @Tags        pages
// @Produce     json
// @Success     200 {object} PageResponse
// @Router      /pages/how-it-works [get]
func (h *PagesHandler) HowItWorks(c *gin.Context) {
	c.JSON(http.StatusOK, PageResponse{
		Title: "How it works",
		Sections: []PageSection{
			{Title: "1. Browse", Body: "Filter the catalog by security type and sort by coupon, tenure, or minimum investment."},
			{Title: "2. Review", Body: "Enter an amount and review the terms, including an estimated annual return at the bond's coupon rate."},
			{Title: "3. Confirm", Body: "Confirm once. Your holding and its repayment schedule appear on your dashboard immediately."},
			{Title: "4. Track", Body: "Follow upcoming repayments and totals across all your holdings from the dashboard."},
		},
	})
}

// FAQ returns the FAQ page content.
// @Summary     Frequently asked questions
// @Tags        pages
// @Produce     json
// @Success     200 {object} PageResponse
// @Router      /pages/faq [get]
func (h *PagesHandler) FAQ(c *gin.Context) {
	c.JSON(http.StatusOK, PageResponse{
		Title: "Frequently asked questions",
		Sections: []PageSection{
			{Title: "What is the minimum investment?", Body: "Each bond sets its own minimum, shown on its listing. Most start at ₹10,000."},
			{Title: "How are returns estimated?", Body: "The estimate is your amount multiplied by the bond's annual coupon rate. It is indicative only and not a yield calculation."},
			{Title: "When do I get repaid?", Body: "Each bond publishes its repayment frequency and redemption type. Your dashboard shows the full schedule per holding."},
			{Title: "What does the rating mean?", Body: "Ratings are assigned by the named agency and indicate the issuer's creditworthiness, not a guarantee of repayment."},
			{Title: "Can I invest in a matured bond?", Body: "No. Only bonds marked Active are open for investment."},
		},
	})
}

// Contact returns the contact page content.
// @Summary     Contact
// @Tags        pages
// @Produce     json
// @Success     200 {object} PageResponse
// @Router      /pages/contact [get]
func (h *PagesHandler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, PageResponse{
		Title: "Contact us",
		Sections: []PageSection{
			{Title: "Support", Body: "support@bondbazaar.in"},
			{Title: "Grievances", Body: "grievances@bondbazaar.in"},
			{Title: "Phone", Body: "+91 80 4718 1800, Mon-Fri 9:30-18:00 IST"},
		},
	})
}

// NotFound is the catch-all for unknown routes.
func (h *PagesHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": gin.H{
			"code":    "NOT_FOUND",
			"message": "The page you are looking for does not exist",
		},
	})
}
