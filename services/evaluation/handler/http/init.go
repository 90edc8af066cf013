package http

import (
	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/middleware"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/evaluation"
)

// EvaluationHandler handles the rating HTTP routes
type EvaluationHandler struct {
	evaluationUC evaluation.EvaluationUC
}

// NewEvaluationHandler creates a new rating HTTP handler
func NewEvaluationHandler(evaluationUC evaluation.EvaluationUC) *EvaluationHandler {
	return &EvaluationHandler{evaluationUC: evaluationUC}
}

// RegisterRoutes wires the rating routes onto the API group
func (h *EvaluationHandler) RegisterRoutes(g *echo.Group, jwtConfig models.JWTConfig) {
	auth := middleware.JWTAuthMiddleware(jwtConfig)
	admin := middleware.RequireRoles(models.RoleAdmin)

	g.POST("/evaluations", h.CreateEvaluation, auth)
	g.GET("/evaluations/utilisateur/:userId", h.ListForUser, auth)
	g.POST("/evaluations/:id/reponse", h.ReplyEvaluation, auth)
	g.POST("/evaluations/:id/utile", h.MarkHelpful, auth)
	g.POST("/evaluations/:id/signaler", h.ReportEvaluation, auth)
	g.PUT("/evaluations/:id/moderation", h.ModerateEvaluation, auth, admin)
}
