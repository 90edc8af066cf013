package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// GetDashboard returns the admin dashboard rollup
func (u *AdminUC) GetDashboard(ctx context.Context) (*models.DashboardStats, error) {
	return u.adminRepo.GetDashboardStats(ctx)
}

// ListUsers pages through accounts with optional role, status and search filters
func (u *AdminUC) ListUsers(ctx context.Context, filter models.UserFilter, p models.Pagination) (*models.Page, error) {
	users, total, err := u.adminRepo.ListUsers(ctx, filter, p)
	if err != nil {
		return nil, err
	}
	return models.NewPage(users, total, p), nil
}

// SetUserStatus suspends or reactivates an account, records the action in the
// moderation history and notifies the member by email. A repeated moderation
// of the same kind is a conflict.
func (u *AdminUC) SetUserStatus(ctx context.Context, userID, adminID uuid.UUID, statut, motif string) error {
	if statut != models.UserStatutActif && statut != models.UserStatutSuspendu {
		return fmt.Errorf("%w: unknown status %q", models.ErrValidation, statut)
	}

	user, err := u.adminRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		return fmt.Errorf("%w: admin accounts cannot be moderated", models.ErrForbidden)
	}

	changed, err := u.adminRepo.SetUserStatut(ctx, userID, statut)
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("%w: account already has status %q", models.ErrConflict, statut)
	}

	action := models.ModerationReactivation
	if statut == models.UserStatutSuspendu {
		action = models.ModerationSuspension
	}
	entry := &models.ModerationEntry{UserID: userID, Action: action, AdminID: &adminID}
	if motif != "" {
		entry.Motif = &motif
	}
	if err := u.adminRepo.AddModerationEntry(ctx, entry); err != nil {
		logger.Warn("Failed to record moderation entry",
			logger.String("user_id", userID.String()),
			logger.String("action", action),
			logger.Err(err))
	}

	u.envoyerEmailStatut(user, statut, motif)

	logger.Info("User status moderated",
		logger.String("user_id", userID.String()),
		logger.String("statut", statut),
		logger.String("admin_id", adminID.String()))
	return nil
}

func (u *AdminUC) envoyerEmailStatut(user *models.User, statut, motif string) {
	var subject, body string
	if statut == models.UserStatutSuspendu {
		subject = "Votre compte TransportConnect a été suspendu"
		body = fmt.Sprintf("Bonjour %s,\n\nVotre compte a été suspendu par notre équipe de modération.", user.Prenom)
		if motif != "" {
			body += "\nMotif : " + motif
		}
	} else {
		subject = "Votre compte TransportConnect a été réactivé"
		body = fmt.Sprintf("Bonjour %s,\n\nVotre compte a été réactivé. Vous pouvez de nouveau vous connecter.", user.Prenom)
	}
	u.mailer.Send(user.Email, subject, body)
}

// GrantBadge adds a badge to an account. Granting a badge the account already
// holds is a conflict.
func (u *AdminUC) GrantBadge(ctx context.Context, userID, adminID uuid.UUID, badge string) error {
	badge = strings.TrimSpace(badge)
	if badge == "" {
		return fmt.Errorf("%w: badge is required", models.ErrValidation)
	}

	user, err := u.adminRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	for _, b := range user.Badges {
		if b == badge {
			return fmt.Errorf("%w: badge %q already granted", models.ErrConflict, badge)
		}
	}

	if err := u.adminRepo.UpdateBadges(ctx, userID, append(user.Badges, badge)); err != nil {
		return err
	}
	u.enregistrerActionBadge(ctx, userID, adminID, models.ModerationBadgeAjoute, badge)
	return nil
}

// RevokeBadge removes a badge from an account. Revoking a badge the account
// does not hold is a conflict.
func (u *AdminUC) RevokeBadge(ctx context.Context, userID, adminID uuid.UUID, badge string) error {
	user, err := u.adminRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	restants := make(models.StringArray, 0, len(user.Badges))
	trouve := false
	for _, b := range user.Badges {
		if b == badge {
			trouve = true
			continue
		}
		restants = append(restants, b)
	}
	if !trouve {
		return fmt.Errorf("%w: badge %q not granted", models.ErrConflict, badge)
	}

	if err := u.adminRepo.UpdateBadges(ctx, userID, restants); err != nil {
		return err
	}
	u.enregistrerActionBadge(ctx, userID, adminID, models.ModerationBadgeRetire, badge)
	return nil
}

func (u *AdminUC) enregistrerActionBadge(ctx context.Context, userID, adminID uuid.UUID, action, badge string) {
	entry := &models.ModerationEntry{UserID: userID, Action: action, Motif: &badge, AdminID: &adminID}
	if err := u.adminRepo.AddModerationEntry(ctx, entry); err != nil {
		logger.Warn("Failed to record badge action",
			logger.String("user_id", userID.String()),
			logger.String("action", action),
			logger.Err(err))
	}
}

// GetModerationHistory returns an account's moderation log
func (u *AdminUC) GetModerationHistory(ctx context.Context, userID uuid.UUID) ([]*models.ModerationEntry, error) {
	if _, err := u.adminRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return u.adminRepo.ListModerationHistory(ctx, userID)
}

// SetAnnonceStatus moderates a listing. Admins may activate, suspend or
// cancel; soft-deleted listings stay out of reach.
func (u *AdminUC) SetAnnonceStatus(ctx context.Context, annonceID uuid.UUID, statut string) error {
	switch statut {
	case models.AnnonceStatutActive, models.AnnonceStatutSuspendue, models.AnnonceStatutAnnulee:
	default:
		return fmt.Errorf("%w: unknown listing status %q", models.ErrValidation, statut)
	}

	changed, err := u.adminRepo.SetAnnonceStatut(ctx, annonceID, statut)
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("%w: listing not found or already in that state", models.ErrConflict)
	}
	return nil
}

// ListLitiges pages through the open dispute queue
func (u *AdminUC) ListLitiges(ctx context.Context, p models.Pagination) (*models.Page, error) {
	litiges, total, err := u.adminRepo.ListLitiges(ctx, p)
	if err != nil {
		return nil, err
	}
	return models.NewPage(litiges, total, p), nil
}
