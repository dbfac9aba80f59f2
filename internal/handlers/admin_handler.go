package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bondbazaar/internal/queries"
)

// AdminHandler serves operator endpoints.
type AdminHandler struct {
	store *queries.Store
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(store *queries.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// InitializeBonds seeds the registry with the default bond catalog. The
// operation is idempotent on the registry side; re-running it against a
// populated catalog is a no-op.
// @Summary     Seed the bond catalog
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Seeded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin only"
// @Failure     502 {object} ErrorResponse "Registry unavailable"
// @Router      /admin/bonds/initialize [post]
func (h *AdminHandler) InitializeBonds(c *gin.Context) {
	if err := h.store.InitializeDefaultBonds(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "initialized"})
}
