package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/internal/utils"
	"github.com/transportconnect/transportconnect/services/demande"
)

// Decision values accepted by RespondDemande
const (
	DecisionAccepter = "accepter"
	DecisionRefuser  = "refuser"
)

// statuts a driver may set directly through UpdateStatut
var statutsConducteur = map[string]bool{
	models.DemandeStatutEnCours: true,
	models.DemandeStatutEnlevee: true,
	models.DemandeStatutTransit: true,
	models.DemandeStatutLivree:  true,
	models.DemandeStatutAnnulee: true,
}

// CreateDemande validates the package against the listing and stores the
// request in its initial status
func (uc *DemandeUC) CreateDemande(ctx context.Context, req models.CreateDemandeRequest, expediteurID uuid.UUID) (*models.Demande, error) {
	a, err := uc.annonceRepo.GetAnnonceByID(ctx, req.AnnonceID)
	if err != nil {
		return nil, err
	}
	if a.Statut != models.AnnonceStatutActive {
		return nil, fmt.Errorf("%w: listing is not active", models.ErrValidation)
	}
	if a.ConducteurID == expediteurID {
		return nil, fmt.Errorf("%w: cannot request transport on your own listing", models.ErrValidation)
	}
	if req.Colis.Longueur <= 0 || req.Colis.Largeur <= 0 || req.Colis.Hauteur <= 0 || req.Colis.Poids <= 0 {
		return nil, fmt.Errorf("%w: package dimensions must be positive", models.ErrValidation)
	}
	if !a.PeutAccepterColis(req.Colis.Longueur, req.Colis.Largeur, req.Colis.Hauteur, req.Colis.Poids) {
		return nil, fmt.Errorf("%w: package exceeds listing capacity", models.ErrValidation)
	}
	if req.PrixPropose < 0 {
		return nil, fmt.Errorf("%w: proposed price cannot be negative", models.ErrValidation)
	}
	if req.AdresseEnlevement.Ville == "" || req.AdresseLivraison.Ville == "" {
		return nil, fmt.Errorf("%w: pickup and delivery cities are required", models.ErrValidation)
	}

	colis := req.Colis
	colis.Volume = colis.Longueur * colis.Largeur * colis.Hauteur
	if colis.Photos == nil {
		colis.Photos = models.StringArray{}
	}

	d := &models.Demande{
		AnnonceID:         req.AnnonceID,
		ExpediteurID:      expediteurID,
		ConducteurID:      a.ConducteurID,
		Colis:             colis,
		AdresseEnlevement: req.AdresseEnlevement,
		AdresseLivraison:  req.AdresseLivraison,
		PrixPropose:       req.PrixPropose,
	}

	if err := uc.demandeRepo.CreateDemande(ctx, d); err != nil {
		return nil, err
	}

	if err := uc.demandeGW.PublishDemandeCreated(ctx, &models.DemandeCreatedEvent{
		DemandeID:    d.ID,
		AnnonceID:    d.AnnonceID,
		ExpediteurID: d.ExpediteurID,
		ConducteurID: d.ConducteurID,
		PrixPropose:  d.PrixPropose,
	}); err != nil {
		logger.Warn("Failed to publish demande.created", logger.Err(err))
	}

	logger.Info("Demande created",
		logger.String("demande_id", d.ID.String()),
		logger.String("annonce_id", d.AnnonceID.String()),
		logger.String("expediteur_id", expediteurID.String()))
	return d, nil
}

// ListDemandes returns the caller's requests: senders see the ones they
// created, drivers the ones received on their listings
func (uc *DemandeUC) ListDemandes(ctx context.Context, userID uuid.UUID, role, statut string, p models.Pagination) (*models.Page, error) {
	var (
		demandes []*models.Demande
		total    int
		err      error
	)
	switch role {
	case models.RoleConducteur:
		demandes, total, err = uc.demandeRepo.ListByConducteur(ctx, userID, statut, p)
	default:
		demandes, total, err = uc.demandeRepo.ListByExpediteur(ctx, userID, statut, p)
	}
	if err != nil {
		return nil, err
	}
	return models.NewPage(demandes, total, p), nil
}

// GetDemande returns a request to one of its parties or an admin
func (uc *DemandeUC) GetDemande(ctx context.Context, id, callerID uuid.UUID, callerRole string) (*models.Demande, error) {
	d, err := uc.demandeRepo.GetDemandeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !d.EstPartie(callerID) && callerRole != models.RoleAdmin {
		return nil, models.ErrForbidden
	}
	return d, nil
}

// RespondDemande lets the listing's driver accept or refuse a pending
// request. Accepting assigns the tracking number exactly once.
func (uc *DemandeUC) RespondDemande(ctx context.Context, id, conducteurID uuid.UUID, decision string, prixAccepte *float64) (*models.Demande, error) {
	d, err := uc.demandeRepo.GetDemandeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.ConducteurID != conducteurID {
		return nil, models.ErrForbidden
	}
	if d.Statut != models.DemandeStatutAttente {
		return nil, fmt.Errorf("%w: request already answered", models.ErrConflict)
	}

	now := time.Now()
	params := demande.TransitionParams{
		ID:          d.ID,
		De:          d.Statut,
		Version:     d.Version,
		AuteurID:    &conducteurID,
		DateReponse: &now,
	}

	switch decision {
	case DecisionAccepter:
		numero, err := utils.GenerateTrackingNumber()
		if err != nil {
			return nil, fmt.Errorf("failed to generate tracking number: %w", err)
		}
		prix := d.PrixPropose
		if prixAccepte != nil {
			if *prixAccepte < 0 {
				return nil, fmt.Errorf("%w: accepted price cannot be negative", models.ErrValidation)
			}
			prix = *prixAccepte
		}
		params.Vers = models.DemandeStatutAcceptee
		params.NumeroSuivi = &numero
		params.PrixAccepte = &prix
		params.IncrementAcceptees = true
	case DecisionRefuser:
		params.Vers = models.DemandeStatutRefusee
	default:
		return nil, fmt.Errorf("%w: unknown decision", models.ErrValidation)
	}

	ok, err := uc.demandeRepo.TransitionStatut(ctx, params)
	if err != nil && params.NumeroSuivi != nil && errors.Is(err, models.ErrConflict) {
		// Tracking number collided with an existing one; regenerate and
		// retry the write once before giving up
		numero, genErr := utils.GenerateTrackingNumber()
		if genErr != nil {
			return nil, fmt.Errorf("failed to generate tracking number: %w", genErr)
		}
		params.NumeroSuivi = &numero
		ok, err = uc.demandeRepo.TransitionStatut(ctx, params)
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request changed concurrently", models.ErrConflict)
	}

	uc.publierChangement(ctx, d, params.Vers, conducteurID, params.NumeroSuivi)

	return uc.demandeRepo.GetDemandeByID(ctx, id)
}

// UpdateStatut moves an accepted request along the delivery lifecycle
func (uc *DemandeUC) UpdateStatut(ctx context.Context, id, conducteurID uuid.UUID, statut string, note *string) (*models.Demande, error) {
	if !statutsConducteur[statut] {
		return nil, fmt.Errorf("%w: status not settable by the driver", models.ErrValidation)
	}

	d, err := uc.demandeRepo.GetDemandeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.ConducteurID != conducteurID {
		return nil, models.ErrForbidden
	}
	if !models.TransitionValide(d.Statut, statut) {
		return nil, fmt.Errorf("%w: transition %s -> %s is not allowed", models.ErrConflict, d.Statut, statut)
	}

	now := time.Now()
	params := demande.TransitionParams{
		ID:       d.ID,
		De:       d.Statut,
		Vers:     statut,
		Version:  d.Version,
		Note:     note,
		AuteurID: &conducteurID,
	}
	switch statut {
	case models.DemandeStatutEnlevee:
		params.DateEnlevement = &now
	case models.DemandeStatutLivree:
		params.DateLivraison = &now
	}

	ok, err := uc.demandeRepo.TransitionStatut(ctx, params)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request changed concurrently", models.ErrConflict)
	}

	uc.publierChangement(ctx, d, statut, conducteurID, d.NumeroSuivi)

	return uc.demandeRepo.GetDemandeByID(ctx, id)
}

// CancelDemande lets the sender withdraw a request before transport starts
func (uc *DemandeUC) CancelDemande(ctx context.Context, id, expediteurID uuid.UUID) error {
	d, err := uc.demandeRepo.GetDemandeByID(ctx, id)
	if err != nil {
		return err
	}
	if d.ExpediteurID != expediteurID {
		return models.ErrForbidden
	}
	if !d.PeutEtreAnnulee() {
		return fmt.Errorf("%w: request can no longer be cancelled", models.ErrConflict)
	}

	ok, err := uc.demandeRepo.TransitionStatut(ctx, demande.TransitionParams{
		ID:       d.ID,
		De:       d.Statut,
		Vers:     models.DemandeStatutAnnulee,
		Version:  d.Version,
		AuteurID: &expediteurID,
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: request changed concurrently", models.ErrConflict)
	}

	uc.publierChangement(ctx, d, models.DemandeStatutAnnulee, expediteurID, d.NumeroSuivi)
	return nil
}

// ReportLitige opens a dispute on behalf of either party
func (uc *DemandeUC) ReportLitige(ctx context.Context, id, callerID uuid.UUID, motif string) error {
	if motif == "" {
		return fmt.Errorf("%w: dispute reason is required", models.ErrValidation)
	}

	d, err := uc.demandeRepo.GetDemandeByID(ctx, id)
	if err != nil {
		return err
	}
	if !d.EstPartie(callerID) {
		return models.ErrForbidden
	}

	ok, err := uc.demandeRepo.OuvrirLitige(ctx, id, motif, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: dispute already open or request closed", models.ErrConflict)
	}

	uc.publierChangement(ctx, d, models.DemandeStatutLitige, callerID, d.NumeroSuivi)

	logger.Info("Dispute opened",
		logger.String("demande_id", id.String()),
		logger.String("signale_par", callerID.String()))
	return nil
}

// ResolveLitige closes an open dispute with an admin decision. The decision
// maps onto a final status: sender wins cancel the transport, driver wins
// marks it delivered, a shared decision leaves the status as it stands.
func (uc *DemandeUC) ResolveLitige(ctx context.Context, id, adminID uuid.UUID, decision, resolution string) (*models.Demande, error) {
	if resolution == "" {
		return nil, fmt.Errorf("%w: resolution text is required", models.ErrValidation)
	}

	var nouveauStatut *string
	switch decision {
	case models.DecisionFaveurExpediteur:
		s := models.DemandeStatutAnnulee
		nouveauStatut = &s
	case models.DecisionFaveurConducteur:
		s := models.DemandeStatutLivree
		nouveauStatut = &s
	case models.DecisionPartage:
		// status unchanged
	default:
		return nil, fmt.Errorf("%w: unknown decision", models.ErrValidation)
	}

	d, err := uc.demandeRepo.GetDemandeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := uc.demandeRepo.ResoudreLitige(ctx, id, resolution, adminID, nouveauStatut)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: no open dispute to resolve", models.ErrConflict)
	}

	if nouveauStatut != nil {
		uc.publierChangement(ctx, d, *nouveauStatut, adminID, d.NumeroSuivi)
	}

	logger.Info("Dispute resolved",
		logger.String("demande_id", id.String()),
		logger.String("decision", decision))

	return uc.demandeRepo.GetDemandeByID(ctx, id)
}

// UpdatePosition overwrites the package's last known location while it
// travels
func (uc *DemandeUC) UpdatePosition(ctx context.Context, id, conducteurID uuid.UUID, pos models.Position) error {
	d, err := uc.demandeRepo.GetDemandeByID(ctx, id)
	if err != nil {
		return err
	}
	if d.ConducteurID != conducteurID {
		return models.ErrForbidden
	}
	switch d.Statut {
	case models.DemandeStatutEnCours, models.DemandeStatutEnlevee, models.DemandeStatutTransit:
	default:
		return fmt.Errorf("%w: request is not in transit", models.ErrConflict)
	}
	if pos.Latitude < -90 || pos.Latitude > 90 || pos.Longitude < -180 || pos.Longitude > 180 {
		return fmt.Errorf("%w: coordinates out of range", models.ErrValidation)
	}

	if pos.Date.IsZero() {
		pos.Date = time.Now()
	}
	return uc.demandeRepo.UpdatePosition(ctx, id, pos)
}

// AddEtape appends a tracking checkpoint
func (uc *DemandeUC) AddEtape(ctx context.Context, id, conducteurID uuid.UUID, localisation, statut string, note *string) error {
	if localisation == "" {
		return fmt.Errorf("%w: checkpoint location is required", models.ErrValidation)
	}

	d, err := uc.demandeRepo.GetDemandeByID(ctx, id)
	if err != nil {
		return err
	}
	if d.ConducteurID != conducteurID {
		return models.ErrForbidden
	}

	return uc.demandeRepo.AddEtape(ctx, &models.EtapeSuivi{
		DemandeID:    id,
		Localisation: localisation,
		Statut:       statut,
		Note:         note,
	})
}

// TrackByNumero resolves the public, unauthenticated tracking view
func (uc *DemandeUC) TrackByNumero(ctx context.Context, numeroSuivi string) (*models.SuiviPublic, error) {
	if numeroSuivi == "" {
		return nil, fmt.Errorf("%w: tracking number is required", models.ErrValidation)
	}

	d, err := uc.demandeRepo.GetDemandeByNumeroSuivi(ctx, numeroSuivi)
	if err != nil {
		return nil, err
	}

	suivi := &models.SuiviPublic{
		NumeroSuivi:      numeroSuivi,
		Statut:           d.Statut,
		Colis:            d.Colis,
		PositionActuelle: d.PositionActuelle,
		Etapes:           d.Etapes,
		DateLivraison:    d.DateLivraisonReelle,
	}

	// city pair comes from the listing; a tombstoned listing still resolves
	if a, err := uc.annonceRepo.GetAnnonceByID(ctx, d.AnnonceID); err == nil {
		suivi.VilleDepart = a.VilleDepart
		suivi.VilleDestination = a.VilleDestination
	}

	return suivi, nil
}

func (uc *DemandeUC) publierChangement(ctx context.Context, d *models.Demande, nouveau string, auteurID uuid.UUID, numeroSuivi *string) {
	event := &models.DemandeStatusChangedEvent{
		DemandeID:     d.ID,
		AncienStatut:  d.Statut,
		NouveauStatut: nouveau,
		ExpediteurID:  d.ExpediteurID,
		ConducteurID:  d.ConducteurID,
		AuteurID:      auteurID,
		ChangedAt:     time.Now(),
	}
	if numeroSuivi != nil {
		event.NumeroSuivi = *numeroSuivi
	}
	if err := uc.demandeGW.PublishStatusChanged(ctx, event); err != nil {
		logger.Warn("Failed to publish demande.status_changed", logger.Err(err))
	}
}
