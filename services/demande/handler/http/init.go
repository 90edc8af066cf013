package http

import (
	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/demande"
)

// DemandeHandler handles the transport request HTTP routes
type DemandeHandler struct {
	demandeUC demande.DemandeUC
}

// NewDemandeHandler creates a new transport request HTTP handler
func NewDemandeHandler(demandeUC demande.DemandeUC) *DemandeHandler {
	return &DemandeHandler{demandeUC: demandeUC}
}

// RegisterRoutes wires the transport request routes onto the API group
func (h *DemandeHandler) RegisterRoutes(g *echo.Group, jwtConfig models.JWTConfig) {
	auth := middleware.JWTAuthMiddleware(jwtConfig)
	conducteur := middleware.RequireRoles(models.RoleConducteur, models.RoleAdmin)
	expediteur := middleware.RequireRoles(models.RoleExpediteur, models.RoleAdmin)
	admin := middleware.RequireRoles(models.RoleAdmin)

	g.GET("/demandes/suivi/:numeroSuivi", h.TrackByNumero)

	g.POST("/demandes", h.CreateDemande, auth, expediteur)
	g.GET("/demandes", h.ListDemandes, auth)
	g.GET("/demandes/:id", h.GetDemande, auth)
	g.PUT("/demandes/:id/reponse", h.RespondDemande, auth, conducteur)
	g.PUT("/demandes/:id/statut", h.UpdateStatut, auth, conducteur)
	g.PUT("/demandes/:id/annuler", h.CancelDemande, auth, expediteur)
	g.POST("/demandes/:id/litige", h.ReportLitige, auth)
	g.PUT("/demandes/:id/position", h.UpdatePosition, auth, conducteur)
	g.POST("/demandes/:id/etapes", h.AddEtape, auth, conducteur)

	g.PUT("/admin/demandes/:id/resoudre-litige", h.ResolveLitige, auth, admin)
}
