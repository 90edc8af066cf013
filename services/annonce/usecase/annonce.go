package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// CreateAnnonce validates and stores a new listing for the driver
func (uc *AnnonceUC) CreateAnnonce(ctx context.Context, a *models.Annonce, conducteurID uuid.UUID) error {
	if a.VilleDepart == "" || a.VilleDestination == "" {
		return fmt.Errorf("%w: departure and destination cities are required", models.ErrValidation)
	}
	if a.DateDepart.Before(time.Now()) {
		return fmt.Errorf("%w: departure date must be in the future", models.ErrValidation)
	}
	if a.Longueur <= 0 || a.Largeur <= 0 || a.Hauteur <= 0 || a.PoidsMax <= 0 {
		return fmt.Errorf("%w: capacity dimensions must be positive", models.ErrValidation)
	}
	if a.TarificationType != models.TarificationParKg && a.TarificationType != models.TarificationFixe {
		return fmt.Errorf("%w: unknown pricing mode", models.ErrValidation)
	}
	if a.TarificationMontant < 0 {
		return fmt.Errorf("%w: price cannot be negative", models.ErrValidation)
	}

	a.ConducteurID = conducteurID
	a.Statut = models.AnnonceStatutActive
	a.RecalculerVolume()
	if a.Devise == "" {
		a.Devise = "EUR"
	}
	if a.Etapes == nil {
		a.Etapes = models.StringArray{}
	}
	if a.TypesMarchandise == nil {
		a.TypesMarchandise = models.StringArray{}
	}

	if err := uc.annonceRepo.CreateAnnonce(ctx, a); err != nil {
		return err
	}

	logger.Info("Annonce created",
		logger.String("annonce_id", a.ID.String()),
		logger.String("conducteur_id", conducteurID.String()),
		logger.String("trajet", a.VilleDepart+" -> "+a.VilleDestination))
	return nil
}

// ListAnnonces runs the paginated search
func (uc *AnnonceUC) ListAnnonces(ctx context.Context, filter models.AnnonceFilter, p models.Pagination) (*models.Page, error) {
	annonces, total, err := uc.annonceRepo.ListAnnonces(ctx, filter, p)
	if err != nil {
		return nil, err
	}
	return models.NewPage(annonces, total, p), nil
}

// GetAnnonce fetches a listing and counts the view. Repeat views from the
// same viewer within the dedup window do not bump the counter.
func (uc *AnnonceUC) GetAnnonce(ctx context.Context, id uuid.UUID, viewerID uuid.UUID) (*models.Annonce, error) {
	a, err := uc.annonceRepo.GetAnnonceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if viewerID != uuid.Nil && viewerID != a.ConducteurID {
		fresh, err := uc.annonceRepo.MarquerVue(ctx, id, viewerID)
		if err != nil {
			logger.Warn("View dedup check failed", logger.Err(err))
		} else if fresh {
			if err := uc.annonceRepo.IncrementVues(ctx, id); err != nil {
				logger.Warn("Failed to increment views", logger.Err(err))
			} else {
				a.NombreVues++
			}
		}
	}

	return a, nil
}

// UpdateAnnonce applies a partial patch. Only the owning driver or an admin
// may modify a listing. A status-only patch short-circuits to a status write.
func (uc *AnnonceUC) UpdateAnnonce(ctx context.Context, id uuid.UUID, patch models.UpdateAnnonceRequest, callerID uuid.UUID, callerRole string) (*models.Annonce, error) {
	a, err := uc.annonceRepo.GetAnnonceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.ConducteurID != callerID && callerRole != models.RoleAdmin {
		return nil, models.ErrForbidden
	}

	if patch.EstStatutSeul() {
		if !estStatutAnnonceValide(*patch.Statut) {
			return nil, fmt.Errorf("%w: unknown listing status", models.ErrValidation)
		}
		if err := uc.annonceRepo.UpdateAnnonceStatut(ctx, id, *patch.Statut); err != nil {
			return nil, err
		}
		a.Statut = *patch.Statut
		return a, nil
	}

	appliquerPatch(a, patch)
	a.RecalculerVolume()

	if a.Longueur <= 0 || a.Largeur <= 0 || a.Hauteur <= 0 || a.PoidsMax <= 0 {
		return nil, fmt.Errorf("%w: capacity dimensions must be positive", models.ErrValidation)
	}
	if a.TarificationMontant < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", models.ErrValidation)
	}
	if patch.Statut != nil && !estStatutAnnonceValide(*patch.Statut) {
		return nil, fmt.Errorf("%w: unknown listing status", models.ErrValidation)
	}

	if err := uc.annonceRepo.UpdateAnnonce(ctx, a); err != nil {
		return nil, err
	}

	logger.Info("Annonce updated",
		logger.String("annonce_id", id.String()),
		logger.String("caller_id", callerID.String()))
	return a, nil
}

// DeleteAnnonce removes a listing. Refused while requests are in flight.
// With no requests at all the listing is hard-deleted; with historical
// requests it is tombstoned so their references stay resolvable.
func (uc *AnnonceUC) DeleteAnnonce(ctx context.Context, id uuid.UUID, callerID uuid.UUID, callerRole string) error {
	a, err := uc.annonceRepo.GetAnnonceByID(ctx, id)
	if err != nil {
		return err
	}
	if a.ConducteurID != callerID && callerRole != models.RoleAdmin {
		return models.ErrForbidden
	}

	enVol, err := uc.annonceRepo.CountDemandesEnVol(ctx, id)
	if err != nil {
		return err
	}
	if enVol > 0 {
		return fmt.Errorf("%w: listing has requests in progress", models.ErrValidation)
	}

	total, err := uc.annonceRepo.CountDemandes(ctx, id)
	if err != nil {
		return err
	}

	if total == 0 {
		err = uc.annonceRepo.DeleteAnnonce(ctx, id)
	} else {
		err = uc.annonceRepo.SoftDeleteAnnonce(ctx, id)
	}
	if err != nil {
		return err
	}

	logger.Info("Annonce deleted",
		logger.String("annonce_id", id.String()),
		logger.String("caller_id", callerID.String()),
		logger.Bool("soft", total > 0))
	return nil
}

// AddCommentaire appends a comment on an active listing
func (uc *AnnonceUC) AddCommentaire(ctx context.Context, annonceID uuid.UUID, auteurID uuid.UUID, texte string) (*models.Commentaire, error) {
	if texte == "" {
		return nil, fmt.Errorf("%w: comment text is required", models.ErrValidation)
	}

	if _, err := uc.annonceRepo.GetAnnonceByID(ctx, annonceID); err != nil {
		return nil, err
	}

	c := &models.Commentaire{
		AnnonceID: annonceID,
		AuteurID:  auteurID,
		Texte:     texte,
	}
	if err := uc.annonceRepo.AddCommentaire(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ReplyCommentaire sets the single threaded reply on a comment. Only the
// listing owner may reply, and only once.
func (uc *AnnonceUC) ReplyCommentaire(ctx context.Context, annonceID, commentaireID, auteurID uuid.UUID, texte string) error {
	if texte == "" {
		return fmt.Errorf("%w: reply text is required", models.ErrValidation)
	}

	a, err := uc.annonceRepo.GetAnnonceByID(ctx, annonceID)
	if err != nil {
		return err
	}
	if a.ConducteurID != auteurID {
		return models.ErrForbidden
	}

	replied, err := uc.annonceRepo.ReplyCommentaire(ctx, commentaireID, auteurID, texte)
	if err != nil {
		return err
	}
	if !replied {
		return fmt.Errorf("%w: comment already has a reply", models.ErrConflict)
	}
	return nil
}

func estStatutAnnonceValide(statut string) bool {
	switch statut {
	case models.AnnonceStatutActive, models.AnnonceStatutInactive,
		models.AnnonceStatutComplete, models.AnnonceStatutAnnulee:
		return true
	}
	return false
}

func appliquerPatch(a *models.Annonce, patch models.UpdateAnnonceRequest) {
	if patch.VilleDepart != nil {
		a.VilleDepart = *patch.VilleDepart
	}
	if patch.VilleDestination != nil {
		a.VilleDestination = *patch.VilleDestination
	}
	if patch.Etapes != nil {
		a.Etapes = *patch.Etapes
	}
	if patch.DateDepart != nil {
		a.DateDepart = *patch.DateDepart
	}
	if patch.DateArriveePrevue != nil {
		a.DateArriveePrevue = patch.DateArriveePrevue
	}
	if patch.Longueur != nil {
		a.Longueur = *patch.Longueur
	}
	if patch.Largeur != nil {
		a.Largeur = *patch.Largeur
	}
	if patch.Hauteur != nil {
		a.Hauteur = *patch.Hauteur
	}
	if patch.PoidsMax != nil {
		a.PoidsMax = *patch.PoidsMax
	}
	if patch.TypesMarchandise != nil {
		a.TypesMarchandise = *patch.TypesMarchandise
	}
	if patch.TarificationType != nil {
		a.TarificationType = *patch.TarificationType
	}
	if patch.TarificationMontant != nil {
		a.TarificationMontant = *patch.TarificationMontant
	}
	if patch.Statut != nil {
		a.Statut = *patch.Statut
	}
	if patch.Description != nil {
		a.Description = *patch.Description
	}
}
