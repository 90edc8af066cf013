package models

import (
	"time"

	"github.com/google/uuid"
)

// Annonce statuses
const (
	AnnonceStatutActive    = "active"
	AnnonceStatutInactive  = "inactive"
	AnnonceStatutComplete  = "complete"
	AnnonceStatutAnnulee   = "annulee"
	AnnonceStatutSuspendue = "suspendue"
	AnnonceStatutSupprimee = "supprimee"
)

// Pricing modes
const (
	TarificationParKg = "per_kg"
	TarificationFixe  = "fixe"
)

// Annonce is a transport listing posted by a driver
type Annonce struct {
	ID                  uuid.UUID   `json:"id" db:"id"`
	ConducteurID        uuid.UUID   `json:"conducteurId" db:"conducteur_id"`
	VilleDepart         string      `json:"villeDepart" db:"ville_depart"`
	VilleDestination    string      `json:"villeDestination" db:"ville_destination"`
	Etapes              StringArray `json:"etapes" db:"etapes"`
	DateDepart          time.Time   `json:"dateDepart" db:"date_depart"`
	DateArriveePrevue   *time.Time  `json:"dateArriveePrevue,omitempty" db:"date_arrivee_prevue"`
	Longueur            float64     `json:"longueur" db:"longueur"`
	Largeur             float64     `json:"largeur" db:"largeur"`
	Hauteur             float64     `json:"hauteur" db:"hauteur"`
	PoidsMax            float64     `json:"poidsMax" db:"poids_max"`
	Volume              float64     `json:"volume" db:"volume"`
	TypesMarchandise    StringArray `json:"typesMarchandise" db:"types_marchandise"`
	TarificationType    string      `json:"tarificationType" db:"tarification_type"`
	TarificationMontant float64     `json:"tarificationMontant" db:"tarification_montant"`
	Devise              string      `json:"devise" db:"devise"`
	Statut              string      `json:"statut" db:"statut"`
	Description         string      `json:"description" db:"description"`
	NombreVues          int         `json:"nombreVues" db:"nombre_vues"`
	NombreDemandes      int         `json:"nombreDemandes" db:"nombre_demandes"`
	DemandesAcceptees   int         `json:"demandesAcceptees" db:"demandes_acceptees"`
	TauxAcceptation     float64     `json:"tauxAcceptation" db:"taux_acceptation"`
	CreatedAt           time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time   `json:"updatedAt" db:"updated_at"`

	Commentaires []*Commentaire `json:"commentaires,omitempty" db:"-"`
}

// RecalculerVolume recomputes the derived capacity volume from the dimensions
func (a *Annonce) RecalculerVolume() {
	a.Volume = a.Longueur * a.Largeur * a.Hauteur
}

// RecalculerTauxAcceptation recomputes the acceptance rate from the request counters
func (a *Annonce) RecalculerTauxAcceptation() {
	if a.NombreDemandes == 0 {
		a.TauxAcceptation = 0
		return
	}
	a.TauxAcceptation = float64(a.DemandesAcceptees) / float64(a.NombreDemandes) * 100
}

// PeutAccepterColis reports whether a package of the given dimensions and
// weight fits inside the listing's capacity envelope. Pure predicate.
func (a *Annonce) PeutAccepterColis(longueur, largeur, hauteur, poids float64) bool {
	return longueur <= a.Longueur &&
		largeur <= a.Largeur &&
		hauteur <= a.Hauteur &&
		poids <= a.PoidsMax
}

// Commentaire is a comment left on a listing, with an optional threaded reply
type Commentaire struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	AnnonceID       uuid.UUID  `json:"annonceId" db:"annonce_id"`
	AuteurID        uuid.UUID  `json:"auteurId" db:"auteur_id"`
	Texte           string     `json:"texte" db:"texte"`
	ReponseTexte    *string    `json:"reponseTexte,omitempty" db:"reponse_texte"`
	ReponseAuteurID *uuid.UUID `json:"reponseAuteurId,omitempty" db:"reponse_auteur_id"`
	ReponseDate     *time.Time `json:"reponseDate,omitempty" db:"reponse_date"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
}

// UpdateAnnonceRequest is a partial listing patch. A patch carrying only
// Statut is applied as a direct status write; any other combination
// overwrites the provided fields.
type UpdateAnnonceRequest struct {
	VilleDepart         *string     `json:"villeDepart,omitempty"`
	VilleDestination    *string     `json:"villeDestination,omitempty"`
	Etapes              *StringArray `json:"etapes,omitempty"`
	DateDepart          *time.Time  `json:"dateDepart,omitempty"`
	DateArriveePrevue   *time.Time  `json:"dateArriveePrevue,omitempty"`
	Longueur            *float64    `json:"longueur,omitempty"`
	Largeur             *float64    `json:"largeur,omitempty"`
	Hauteur             *float64    `json:"hauteur,omitempty"`
	PoidsMax            *float64    `json:"poidsMax,omitempty"`
	TypesMarchandise    *StringArray `json:"typesMarchandise,omitempty"`
	TarificationType    *string     `json:"tarificationType,omitempty"`
	TarificationMontant *float64    `json:"tarificationMontant,omitempty"`
	Statut              *string     `json:"statut,omitempty"`
	Description         *string     `json:"description,omitempty"`
}

// EstStatutSeul reports whether the patch only carries a status change
func (r UpdateAnnonceRequest) EstStatutSeul() bool {
	return r.Statut != nil &&
		r.VilleDepart == nil && r.VilleDestination == nil && r.Etapes == nil &&
		r.DateDepart == nil && r.DateArriveePrevue == nil &&
		r.Longueur == nil && r.Largeur == nil && r.Hauteur == nil && r.PoidsMax == nil &&
		r.TypesMarchandise == nil && r.TarificationType == nil &&
		r.TarificationMontant == nil && r.Description == nil
}

// AnnonceFilter is the conjunctive search filter for listings
type AnnonceFilter struct {
	VilleDepart      string
	VilleDestination string
	DateMin          *time.Time
	DateMax          *time.Time
	PrixMin          *float64
	PrixMax          *float64
	TypesMarchandise []string
	Statut           string
	ConducteurID     *uuid.UUID
}
