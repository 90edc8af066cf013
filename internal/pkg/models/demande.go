package models

import (
	"time"

	"github.com/google/uuid"
)

// Demande statuses
const (
	DemandeStatutAttente  = "en_attente"
	DemandeStatutAcceptee = "acceptee"
	DemandeStatutRefusee  = "refusee"
	DemandeStatutEnCours  = "en_cours"
	DemandeStatutEnlevee  = "enlevee"
	DemandeStatutTransit  = "en_transit"
	DemandeStatutLivree   = "livree"
	DemandeStatutAnnulee  = "annulee"
	DemandeStatutLitige   = "litige"
)

// Dispute resolution decisions
const (
	DecisionFaveurExpediteur = "faveur_expediteur"
	DecisionFaveurConducteur = "faveur_conducteur"
	DecisionPartage          = "partage"
)

// transitions is the legal status transition table. The initial status
// en_attente is written at creation and never re-entered.
var transitions = map[string][]string{
	DemandeStatutAttente:  {DemandeStatutAcceptee, DemandeStatutRefusee, DemandeStatutAnnulee, DemandeStatutLitige},
	DemandeStatutAcceptee: {DemandeStatutEnCours, DemandeStatutAnnulee, DemandeStatutLitige},
	DemandeStatutEnCours:  {DemandeStatutEnlevee, DemandeStatutAnnulee, DemandeStatutLitige},
	DemandeStatutEnlevee:  {DemandeStatutTransit, DemandeStatutAnnulee, DemandeStatutLitige},
	DemandeStatutTransit:  {DemandeStatutLivree, DemandeStatutAnnulee, DemandeStatutLitige},
	DemandeStatutLitige:   {DemandeStatutLivree, DemandeStatutAnnulee},
}

// TransitionValide reports whether moving from one status to another is legal
func TransitionValide(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Adresse is a pickup or delivery address block
type Adresse struct {
	Rue        string `json:"rue"`
	Ville      string `json:"ville"`
	CodePostal string `json:"codePostal"`
	Pays       string `json:"pays"`
}

// Colis describes the package attached to a request
type Colis struct {
	Longueur       float64     `json:"longueur"`
	Largeur        float64     `json:"largeur"`
	Hauteur        float64     `json:"hauteur"`
	Volume         float64     `json:"volume"`
	Poids          float64     `json:"poids"`
	ValeurDeclaree *float64    `json:"valeurDeclaree,omitempty"`
	Fragile        bool        `json:"fragile"`
	Description    string      `json:"description"`
	Photos         StringArray `json:"photos"`
}

// Position is the last known location of a package in transit
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Adresse   string    `json:"adresse"`
	Date      time.Time `json:"date"`
}

// Litige is the dispute sub-object of a request
type Litige struct {
	Signale         bool       `json:"signale"`
	Motif           *string    `json:"motif,omitempty"`
	SignalePar      *uuid.UUID `json:"signalePar,omitempty"`
	DateSignalement *time.Time `json:"dateSignalement,omitempty"`
	Resolu          bool       `json:"resolu"`
	Resolution      *string    `json:"resolution,omitempty"`
	ResoluPar       *uuid.UUID `json:"resoluPar,omitempty"`
	DateResolution  *time.Time `json:"dateResolution,omitempty"`
}

// HistoriqueEntry is one append-only status history record
type HistoriqueEntry struct {
	ID        int64      `json:"id" db:"id"`
	DemandeID uuid.UUID  `json:"demandeId" db:"demande_id"`
	Statut    string     `json:"statut" db:"statut"`
	Note      *string    `json:"note,omitempty" db:"note"`
	AuteurID  *uuid.UUID `json:"auteurId,omitempty" db:"auteur_id"`
	CreatedAt time.Time  `json:"date" db:"created_at"`
}

// EtapeSuivi is one tracking checkpoint, appended and never removed
type EtapeSuivi struct {
	ID           int64     `json:"id" db:"id"`
	DemandeID    uuid.UUID `json:"demandeId" db:"demande_id"`
	Localisation string    `json:"localisation" db:"localisation"`
	Statut       string    `json:"statut" db:"statut"`
	Note         *string   `json:"note,omitempty" db:"note"`
	CreatedAt    time.Time `json:"date" db:"created_at"`
}

// Demande is a transport request submitted by a sender against a listing
type Demande struct {
	ID                     uuid.UUID  `json:"id" db:"id"`
	AnnonceID              uuid.UUID  `json:"annonceId" db:"annonce_id"`
	ExpediteurID           uuid.UUID  `json:"expediteurId" db:"expediteur_id"`
	ConducteurID           uuid.UUID  `json:"conducteurId" db:"conducteur_id"`
	Colis                  Colis      `json:"colis" db:"-"`
	AdresseEnlevement      Adresse    `json:"adresseEnlevement" db:"-"`
	AdresseLivraison       Adresse    `json:"adresseLivraison" db:"-"`
	PrixPropose            float64    `json:"prixPropose" db:"prix_propose"`
	PrixAccepte            *float64   `json:"prixAccepte,omitempty" db:"prix_accepte"`
	Statut                 string     `json:"statut" db:"statut"`
	NumeroSuivi            *string    `json:"numeroSuivi,omitempty" db:"numero_suivi"`
	PositionActuelle       *Position  `json:"positionActuelle,omitempty" db:"-"`
	Litige                 Litige     `json:"litige" db:"-"`
	EvaluationExpediteurID *uuid.UUID `json:"evaluationExpediteurId,omitempty" db:"evaluation_expediteur_id"`
	EvaluationConducteurID *uuid.UUID `json:"evaluationConducteurId,omitempty" db:"evaluation_conducteur_id"`
	DateReponse            *time.Time `json:"dateReponse,omitempty" db:"date_reponse"`
	DateEnlevement         *time.Time `json:"dateEnlevement,omitempty" db:"date_enlevement"`
	DateLivraisonReelle    *time.Time `json:"dateLivraisonReelle,omitempty" db:"date_livraison_reelle"`
	Version                int        `json:"-" db:"version"`
	CreatedAt              time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time  `json:"updatedAt" db:"updated_at"`

	Historique []*HistoriqueEntry `json:"historique,omitempty" db:"-"`
	Etapes     []*EtapeSuivi      `json:"etapes,omitempty" db:"-"`
}

// EstTerminale reports whether the request reached a terminal status
func (d *Demande) EstTerminale() bool {
	switch d.Statut {
	case DemandeStatutLivree, DemandeStatutRefusee, DemandeStatutAnnulee:
		return true
	case DemandeStatutLitige:
		return d.Litige.Resolu
	}
	return false
}

// PeutEtreAnnulee reports whether the sender may still cancel the request
func (d *Demande) PeutEtreAnnulee() bool {
	return d.Statut == DemandeStatutAttente || d.Statut == DemandeStatutAcceptee
}

// EstPartie reports whether the given user is one of the two transaction parties
func (d *Demande) EstPartie(userID uuid.UUID) bool {
	return d.ExpediteurID == userID || d.ConducteurID == userID
}

// CreateDemandeRequest is the creation payload
type CreateDemandeRequest struct {
	AnnonceID         uuid.UUID `json:"annonceId"`
	Colis             Colis     `json:"colis"`
	AdresseEnlevement Adresse   `json:"adresseEnlevement"`
	AdresseLivraison  Adresse   `json:"adresseLivraison"`
	PrixPropose       float64   `json:"prixPropose"`
}

// SuiviPublic is the reduced view returned by the unauthenticated tracking lookup
type SuiviPublic struct {
	NumeroSuivi      string        `json:"numeroSuivi"`
	Statut           string        `json:"statut"`
	VilleDepart      string        `json:"villeDepart"`
	VilleDestination string        `json:"villeDestination"`
	Colis            Colis         `json:"colis"`
	PositionActuelle *Position     `json:"positionActuelle,omitempty"`
	Etapes           []*EtapeSuivi `json:"etapes"`
	DateLivraison    *time.Time    `json:"dateLivraison,omitempty"`
}
