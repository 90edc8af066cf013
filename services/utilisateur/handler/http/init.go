package http

import (
	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/utilisateur"
)

// UtilisateurHandler handles the account HTTP routes
type UtilisateurHandler struct {
	utilisateurUC utilisateur.UtilisateurUC
}

// NewUtilisateurHandler creates a new account HTTP handler
func NewUtilisateurHandler(utilisateurUC utilisateur.UtilisateurUC) *UtilisateurHandler {
	return &UtilisateurHandler{utilisateurUC: utilisateurUC}
}

// RegisterRoutes wires the account routes onto the API group. Auth routes
// additionally carry the rate limiter installed by the caller.
func (h *UtilisateurHandler) RegisterRoutes(g *echo.Group, jwtConfig models.JWTConfig, authMiddlewares ...echo.MiddlewareFunc) {
	auth := middleware.JWTAuthMiddleware(jwtConfig)

	g.POST("/auth/register", h.Register, authMiddlewares...)
	g.POST("/auth/login", h.Login, authMiddlewares...)

	g.GET("/utilisateurs/me", h.GetProfile, auth)
	g.PUT("/utilisateurs/me", h.UpdateProfile, auth)
	g.PUT("/utilisateurs/me/mot-de-passe", h.ChangePassword, auth)
	g.DELETE("/utilisateurs/me", h.DeleteAccount, auth)
	g.GET("/utilisateurs/:id/profil", h.GetPublicProfile, auth)
}
