package models

import (
	"time"

	"github.com/google/uuid"
)

// Moderation actions recorded against user accounts
const (
	ModerationSuspension   = "suspension"
	ModerationReactivation = "reactivation"
	ModerationBadgeAjoute  = "badge_ajoute"
	ModerationBadgeRetire  = "badge_retire"
)

// Export dataset identifiers
const (
	ExportUtilisateurs = "users"
	ExportAnnonces     = "annonces"
	ExportDemandes     = "demandes"
	ExportEvaluations  = "evaluations"
)

// StatutCounts maps a status or role value to a row count
type StatutCounts map[string]int

// CroissanceMois is one point of the monthly growth series
type CroissanceMois struct {
	Mois         string `json:"mois" db:"mois"`
	Utilisateurs int    `json:"utilisateurs" db:"utilisateurs"`
	Annonces     int    `json:"annonces" db:"annonces"`
	Demandes     int    `json:"demandes" db:"demandes"`
}

// DashboardStats is the admin dashboard rollup
type DashboardStats struct {
	TotalUtilisateurs     int              `json:"totalUtilisateurs"`
	UtilisateursParRole   StatutCounts     `json:"utilisateursParRole"`
	UtilisateursParStatut StatutCounts     `json:"utilisateursParStatut"`
	TotalAnnonces         int              `json:"totalAnnonces"`
	AnnoncesParStatut     StatutCounts     `json:"annoncesParStatut"`
	TotalDemandes         int              `json:"totalDemandes"`
	DemandesParStatut     StatutCounts     `json:"demandesParStatut"`
	TotalEvaluations      int              `json:"totalEvaluations"`
	NoteMoyenneGlobale    float64          `json:"noteMoyenneGlobale"`
	Croissance            []CroissanceMois `json:"croissance"`
}

// SetUserStatusRequest is the account moderation payload
type SetUserStatusRequest struct {
	Statut string `json:"statut"`
	Motif  string `json:"motif"`
}

// BadgeRequest names a badge to grant or revoke
type BadgeRequest struct {
	Badge string `json:"badge"`
}

// SetAnnonceStatusRequest is the listing moderation payload
type SetAnnonceStatusRequest struct {
	Statut string `json:"statut"`
}

// LitigeResume is one open dispute as listed on the admin moderation queue
type LitigeResume struct {
	DemandeID       uuid.UUID `json:"demandeId" db:"id"`
	AnnonceID       uuid.UUID `json:"annonceId" db:"annonce_id"`
	ExpediteurID    uuid.UUID `json:"expediteurId" db:"expediteur_id"`
	ConducteurID    uuid.UUID `json:"conducteurId" db:"conducteur_id"`
	Motif           *string   `json:"motif,omitempty" db:"litige_motif"`
	SignalePar      uuid.UUID `json:"signalePar" db:"litige_signale_par"`
	DateSignalement time.Time `json:"dateSignalement" db:"litige_date_signalement"`
	PrixPropose     float64   `json:"prixPropose" db:"prix_propose"`
}

// ExportUtilisateur is one flat row of the users export
type ExportUtilisateur struct {
	ID                uuid.UUID `json:"id" db:"id"`
	Nom               string    `json:"nom" db:"nom"`
	Prenom            string    `json:"prenom" db:"prenom"`
	Email             string    `json:"email" db:"email"`
	Role              string    `json:"role" db:"role"`
	Statut            string    `json:"statut" db:"statut"`
	NoteMoyenne       float64   `json:"noteMoyenne" db:"note_moyenne"`
	NombreEvaluations int       `json:"nombreEvaluations" db:"nombre_evaluations"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}

// ExportAnnonce is one flat row of the listings export
type ExportAnnonce struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	ConducteurID        uuid.UUID `json:"conducteurId" db:"conducteur_id"`
	VilleDepart         string    `json:"villeDepart" db:"ville_depart"`
	VilleDestination    string    `json:"villeDestination" db:"ville_destination"`
	DateDepart          time.Time `json:"dateDepart" db:"date_depart"`
	Statut              string    `json:"statut" db:"statut"`
	TarificationType    string    `json:"tarificationType" db:"tarification_type"`
	TarificationMontant float64   `json:"tarificationMontant" db:"tarification_montant"`
	NombreDemandes      int       `json:"nombreDemandes" db:"nombre_demandes"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
}

// ExportDemande is one flat row of the transport requests export
type ExportDemande struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	AnnonceID     uuid.UUID  `json:"annonceId" db:"annonce_id"`
	ExpediteurID  uuid.UUID  `json:"expediteurId" db:"expediteur_id"`
	ConducteurID  uuid.UUID  `json:"conducteurId" db:"conducteur_id"`
	Statut        string     `json:"statut" db:"statut"`
	PrixPropose   float64    `json:"prixPropose" db:"prix_propose"`
	PrixAccepte   *float64   `json:"prixAccepte,omitempty" db:"prix_accepte"`
	NumeroSuivi   *string    `json:"numeroSuivi,omitempty" db:"numero_suivi"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	DateLivraison *time.Time `json:"dateLivraison,omitempty" db:"date_livraison_reelle"`
}

// ExportEvaluation is one flat row of the ratings export
type ExportEvaluation struct {
	ID           uuid.UUID `json:"id" db:"id"`
	DemandeID    uuid.UUID `json:"demandeId" db:"demande_id"`
	EvaluateurID uuid.UUID `json:"evaluateurId" db:"evaluateur_id"`
	EvalueID     uuid.UUID `json:"evalueId" db:"evalue_id"`
	Note         float64   `json:"note" db:"note"`
	Recommande   bool      `json:"recommande" db:"recommande"`
	Approuvee    bool      `json:"approuvee" db:"approuvee"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
