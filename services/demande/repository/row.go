package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// demandeRow flattens the nested request document onto the demandes table
type demandeRow struct {
	ID           uuid.UUID `db:"id"`
	AnnonceID    uuid.UUID `db:"annonce_id"`
	ExpediteurID uuid.UUID `db:"expediteur_id"`
	ConducteurID uuid.UUID `db:"conducteur_id"`

	ColisLongueur       float64            `db:"colis_longueur"`
	ColisLargeur        float64            `db:"colis_largeur"`
	ColisHauteur        float64            `db:"colis_hauteur"`
	ColisVolume         float64            `db:"colis_volume"`
	ColisPoids          float64            `db:"colis_poids"`
	ColisValeurDeclaree *float64           `db:"colis_valeur_declaree"`
	ColisFragile        bool               `db:"colis_fragile"`
	ColisDescription    *string            `db:"colis_description"`
	ColisPhotos         models.StringArray `db:"colis_photos"`

	EnlevementRue        *string `db:"enlevement_rue"`
	EnlevementVille      string  `db:"enlevement_ville"`
	EnlevementCodePostal *string `db:"enlevement_code_postal"`
	EnlevementPays       *string `db:"enlevement_pays"`
	LivraisonRue         *string `db:"livraison_rue"`
	LivraisonVille       string  `db:"livraison_ville"`
	LivraisonCodePostal  *string `db:"livraison_code_postal"`
	LivraisonPays        *string `db:"livraison_pays"`

	PrixPropose float64  `db:"prix_propose"`
	PrixAccepte *float64 `db:"prix_accepte"`
	Statut      string   `db:"statut"`
	NumeroSuivi *string  `db:"numero_suivi"`

	PositionLat     *float64   `db:"position_lat"`
	PositionLon     *float64   `db:"position_lon"`
	PositionAdresse *string    `db:"position_adresse"`
	PositionDate    *time.Time `db:"position_date"`

	LitigeSignale         bool       `db:"litige_signale"`
	LitigeMotif           *string    `db:"litige_motif"`
	LitigeSignalePar      *uuid.UUID `db:"litige_signale_par"`
	LitigeDateSignalement *time.Time `db:"litige_date_signalement"`
	LitigeResolu          bool       `db:"litige_resolu"`
	LitigeResolution      *string    `db:"litige_resolution"`
	LitigeResoluPar       *uuid.UUID `db:"litige_resolu_par"`
	LitigeDateResolution  *time.Time `db:"litige_date_resolution"`

	EvaluationExpediteurID *uuid.UUID `db:"evaluation_expediteur_id"`
	EvaluationConducteurID *uuid.UUID `db:"evaluation_conducteur_id"`

	DateReponse         *time.Time `db:"date_reponse"`
	DateEnlevement      *time.Time `db:"date_enlevement"`
	DateLivraisonReelle *time.Time `db:"date_livraison_reelle"`

	Version   int       `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptrIfSet(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func rowFromDemande(d *models.Demande) *demandeRow {
	return &demandeRow{
		ID:           d.ID,
		AnnonceID:    d.AnnonceID,
		ExpediteurID: d.ExpediteurID,
		ConducteurID: d.ConducteurID,

		ColisLongueur:       d.Colis.Longueur,
		ColisLargeur:        d.Colis.Largeur,
		ColisHauteur:        d.Colis.Hauteur,
		ColisVolume:         d.Colis.Volume,
		ColisPoids:          d.Colis.Poids,
		ColisValeurDeclaree: d.Colis.ValeurDeclaree,
		ColisFragile:        d.Colis.Fragile,
		ColisDescription:    ptrIfSet(d.Colis.Description),
		ColisPhotos:         d.Colis.Photos,

		EnlevementRue:        ptrIfSet(d.AdresseEnlevement.Rue),
		EnlevementVille:      d.AdresseEnlevement.Ville,
		EnlevementCodePostal: ptrIfSet(d.AdresseEnlevement.CodePostal),
		EnlevementPays:       ptrIfSet(d.AdresseEnlevement.Pays),
		LivraisonRue:         ptrIfSet(d.AdresseLivraison.Rue),
		LivraisonVille:       d.AdresseLivraison.Ville,
		LivraisonCodePostal:  ptrIfSet(d.AdresseLivraison.CodePostal),
		LivraisonPays:        ptrIfSet(d.AdresseLivraison.Pays),

		PrixPropose: d.PrixPropose,
		PrixAccepte: d.PrixAccepte,
		Statut:      d.Statut,
		NumeroSuivi: d.NumeroSuivi,

		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *demandeRow) toDemande() *models.Demande {
	d := &models.Demande{
		ID:           r.ID,
		AnnonceID:    r.AnnonceID,
		ExpediteurID: r.ExpediteurID,
		ConducteurID: r.ConducteurID,
		Colis: models.Colis{
			Longueur:       r.ColisLongueur,
			Largeur:        r.ColisLargeur,
			Hauteur:        r.ColisHauteur,
			Volume:         r.ColisVolume,
			Poids:          r.ColisPoids,
			ValeurDeclaree: r.ColisValeurDeclaree,
			Fragile:        r.ColisFragile,
			Description:    deref(r.ColisDescription),
			Photos:         r.ColisPhotos,
		},
		AdresseEnlevement: models.Adresse{
			Rue:        deref(r.EnlevementRue),
			Ville:      r.EnlevementVille,
			CodePostal: deref(r.EnlevementCodePostal),
			Pays:       deref(r.EnlevementPays),
		},
		AdresseLivraison: models.Adresse{
			Rue:        deref(r.LivraisonRue),
			Ville:      r.LivraisonVille,
			CodePostal: deref(r.LivraisonCodePostal),
			Pays:       deref(r.LivraisonPays),
		},
		PrixPropose: r.PrixPropose,
		PrixAccepte: r.PrixAccepte,
		Statut:      r.Statut,
		NumeroSuivi: r.NumeroSuivi,
		Litige: models.Litige{
			Signale:         r.LitigeSignale,
			Motif:           r.LitigeMotif,
			SignalePar:      r.LitigeSignalePar,
			DateSignalement: r.LitigeDateSignalement,
			Resolu:          r.LitigeResolu,
			Resolution:      r.LitigeResolution,
			ResoluPar:       r.LitigeResoluPar,
			DateResolution:  r.LitigeDateResolution,
		},
		EvaluationExpediteurID: r.EvaluationExpediteurID,
		EvaluationConducteurID: r.EvaluationConducteurID,
		DateReponse:            r.DateReponse,
		DateEnlevement:         r.DateEnlevement,
		DateLivraisonReelle:    r.DateLivraisonReelle,
		Version:                r.Version,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}

	if r.PositionLat != nil && r.PositionLon != nil {
		d.PositionActuelle = &models.Position{
			Latitude:  *r.PositionLat,
			Longitude: *r.PositionLon,
			Adresse:   deref(r.PositionAdresse),
		}
		if r.PositionDate != nil {
			d.PositionActuelle.Date = *r.PositionDate
		}
	}

	return d
}
