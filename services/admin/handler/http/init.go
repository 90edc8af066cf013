package http

import (
	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/admin"
)

// AdminHandler handles the back-office HTTP routes
type AdminHandler struct {
	adminUC admin.AdminUC
}

// NewAdminHandler creates a new back-office HTTP handler
func NewAdminHandler(adminUC admin.AdminUC) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// RegisterRoutes wires the back-office routes onto the API group. Every route
// requires the admin role.
func (h *AdminHandler) RegisterRoutes(g *echo.Group, jwtConfig models.JWTConfig) {
	auth := middleware.JWTAuthMiddleware(jwtConfig)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	grp := g.Group("/admin", auth, adminOnly)

	grp.GET("/dashboard", h.GetDashboard)
	grp.GET("/utilisateurs", h.ListUsers)
	grp.GET("/utilisateurs/:id/moderation", h.GetModerationHistory)
	grp.PUT("/utilisateurs/:id/statut", h.SetUserStatus)
	grp.POST("/utilisateurs/:id/badges", h.GrantBadge)
	grp.DELETE("/utilisateurs/:id/badges/:badge", h.RevokeBadge)
	grp.PUT("/annonces/:id/statut", h.SetAnnonceStatus)
	grp.GET("/litiges", h.ListLitiges)
	grp.GET("/export/:dataset", h.Export)
}
