package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bondbazaar/internal/errors"
	"bondbazaar/internal/format"
	"bondbazaar/internal/models"
	"bondbazaar/internal/queries"
)

// ProfileHandler serves the caller's profile.
type ProfileHandler struct {
	store *queries.Store
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(store *queries.Store) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// SaveProfileRequest represents the profile fields a user may set. KYC status
// is owned by the registry and cannot be set here.
type SaveProfileRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,e164"`
}

// ProfileResponse is the profile view with a display-ready KYC label.
type ProfileResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	KYCStatus   string `json:"kyc_status"`
	KYCLabel    string `json:"kyc_label"`
}

// GetProfile returns the caller's profile.
// @Summary     Get profile
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ProfileResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.store.UserProfile(c.Request.Context(), principal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		Name:        profile.Name,
		Email:       profile.Email,
		PhoneNumber: profile.PhoneNumber,
		KYCStatus:   string(profile.KYCStatus),
		KYCLabel:    format.KYCLabel(profile.KYCStatus),
	})
}

// SaveProfile creates or replaces the caller's profile.
// @Summary     Save profile
// @Description Create or update the caller's profile; new profiles start with KYC pending
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SaveProfileRequest true "Profile fields"
// @Success     200 {object} ProfileResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /profile [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	err = h.store.SaveUserProfile(c.Request.Context(), principal, models.UserProfile{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.store.UserProfile(c.Request.Context(), principal)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{
		Name:        profile.Name,
		Email:       profile.Email,
		PhoneNumber: profile.PhoneNumber,
		KYCStatus:   string(profile.KYCStatus),
		KYCLabel:    format.KYCLabel(profile.KYCStatus),
	})
}
