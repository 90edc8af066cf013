package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Evaluation directions
const (
	EvalExpediteurVersConducteur = "expediteur_vers_conducteur"
	EvalConducteurVersExpediteur = "conducteur_vers_expediteur"
)

// Criteres holds the per-criterion scores (1-5). SoinMarchandise only applies
// to sender-rates-driver, QualiteColis to driver-rates-sender.
type Criteres struct {
	Ponctualite      int  `json:"ponctualite"`
	Communication    int  `json:"communication"`
	Professionnalisme int `json:"professionnalisme"`
	SoinMarchandise  *int `json:"soinMarchandise,omitempty"`
	QualiteColis     *int `json:"qualiteColis,omitempty"`
}

// Moyenne computes the arithmetic mean of the present criteria, rounded to the
// nearest half point.
func (c Criteres) Moyenne() float64 {
	sum := float64(c.Ponctualite + c.Communication + c.Professionnalisme)
	n := 3.0
	if c.SoinMarchandise != nil {
		sum += float64(*c.SoinMarchandise)
		n++
	}
	if c.QualiteColis != nil {
		sum += float64(*c.QualiteColis)
		n++
	}
	return math.Round(sum/n*2) / 2
}

// Signalement mirrors the dispute shape on a rating
type Signalement struct {
	Signale    bool       `json:"signale"`
	Motif      *string    `json:"motif,omitempty"`
	SignalePar *uuid.UUID `json:"signalePar,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	Traite     bool       `json:"traite"`
}

// Reponse is the one-time reply from the rated party
type Reponse struct {
	Texte string    `json:"texte"`
	Date  time.Time `json:"date"`
}

// Evaluation is a post-delivery rating of one party by the other
type Evaluation struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	DemandeID      uuid.UUID   `json:"demandeId" db:"demande_id"`
	EvaluateurID   uuid.UUID   `json:"evaluateurId" db:"evaluateur_id"`
	EvalueID       uuid.UUID   `json:"evalueId" db:"evalue_id"`
	TypeEvaluation string      `json:"typeEvaluation" db:"type_evaluation"`
	Note           float64     `json:"note" db:"note"`
	Criteres       Criteres    `json:"criteres" db:"-"`
	Commentaire    string      `json:"commentaire" db:"commentaire"`
	Recommande     bool        `json:"recommande" db:"recommande"`
	Reponse        *Reponse    `json:"reponse,omitempty" db:"-"`
	Approuvee      bool        `json:"approuvee" db:"approuvee"`
	NombreUtile    int         `json:"nombreUtile" db:"nombre_utile"`
	Signalement    Signalement `json:"signalement" db:"-"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
}

// CreateEvaluationRequest is the rating creation payload
type CreateEvaluationRequest struct {
	DemandeID   uuid.UUID `json:"demandeId"`
	Criteres    Criteres  `json:"criteres"`
	Commentaire string    `json:"commentaire"`
	Recommande  bool      `json:"recommande"`
}
