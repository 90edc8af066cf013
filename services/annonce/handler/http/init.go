package http

import (
	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/annonce"
)

// AnnonceHandler handles the listing HTTP routes
type AnnonceHandler struct {
	annonceUC annonce.AnnonceUC
}

// NewAnnonceHandler creates a new listing HTTP handler
func NewAnnonceHandler(annonceUC annonce.AnnonceUC) *AnnonceHandler {
	return &AnnonceHandler{annonceUC: annonceUC}
}

// RegisterRoutes wires the listing routes onto the API group
func (h *AnnonceHandler) RegisterRoutes(g *echo.Group, jwtConfig models.JWTConfig) {
	auth := middleware.JWTAuthMiddleware(jwtConfig)
	conducteur := middleware.RequireRoles(models.RoleConducteur, models.RoleAdmin)

	g.GET("/annonces", h.ListAnnonces)
	g.GET("/annonces/:id", h.GetAnnonce, optionalAuth(jwtConfig))

	g.POST("/annonces", h.CreateAnnonce, auth, conducteur)
	g.PUT("/annonces/:id", h.UpdateAnnonce, auth, conducteur)
	g.DELETE("/annonces/:id", h.DeleteAnnonce, auth, conducteur)

	g.POST("/annonces/:id/commentaires", h.AddCommentaire, auth)
	g.POST("/annonces/:id/commentaires/:commentaireId/reponse", h.ReplyCommentaire, auth, conducteur)
}

// optionalAuth decodes credentials when present but lets anonymous requests
// through, so public reads can still attribute views to a viewer
func optionalAuth(jwtConfig models.JWTConfig) echo.MiddlewareFunc {
	authed := middleware.JWTAuthMiddleware(jwtConfig)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		withAuth := authed(next)
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}
			return withAuth(c)
		}
	}
}
