package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bondbazaar/internal/errors"
	"bondbazaar/internal/investflow"
	"bondbazaar/internal/middleware"
	"bondbazaar/internal/queries"
)

// SessionHandler exchanges a verified principal for a session token and
// tears sessions down on sign-out. Identity verification itself happens
// upstream; by the time a request reaches this service the principal is
// already established.
type SessionHandler struct {
	store     *queries.Store
	workflows *investflow.Registry
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(store *queries.Store, workflows *investflow.Registry) *SessionHandler {
	return &SessionHandler{store: store, workflows: workflows}
}

// SignInRequest carries the upstream-verified principal.
type SignInRequest struct {
	Principal string `json:"principal" binding:"required,min=1,max=128"`
}

// SignInResponse carries the issued session token and the caller's role.
type SignInResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// SignIn issues a session token for a principal.
// @Summary     Sign in
// @Description Exchange an upstream-verified principal for a session token
// @Tags        session
// @Accept      json
// @Produce     json
// @Param       request body SignInRequest true "Principal"
// @Success     200 {object} SignInResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Registry unavailable"
// @Router      /session [post]
func (h *SessionHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	role, err := h.store.UserRole(c.Request.Context(), req.Principal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateSessionToken(req.Principal, role)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, SignInResponse{Token: token, Role: string(role)})
}

// SignOut drops the caller's cached data and any open invest sessions. The
// token itself simply expires; there is no server-side token registry.
// @Summary     Sign out
// @Tags        session
// @Produce     json
// @Security    BearerAuth
// @Success     204 "Signed out"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /session [delete]
func (h *SessionHandler) SignOut(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.store.ClearUser(principal)
	h.workflows.ClearPrincipal(principal)
	c.Status(http.StatusNoContent)
}
