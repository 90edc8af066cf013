package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleAdmin      = "admin"
	RoleConducteur = "conducteur"
	RoleExpediteur = "expediteur"
)

// User account statuses
const (
	UserStatutActif    = "actif"
	UserStatutSuspendu = "suspendu"
	UserStatutAttente  = "en_attente"
)

// User represents an account on the marketplace (admin, driver or sender)
type User struct {
	ID                uuid.UUID   `json:"id" db:"id"`
	Nom               string      `json:"nom" db:"nom"`
	Prenom            string      `json:"prenom" db:"prenom"`
	Email             string      `json:"email" db:"email"`
	Telephone         string      `json:"telephone" db:"telephone"`
	MotDePasse        string      `json:"-" db:"mot_de_passe"`
	Role              string      `json:"role" db:"role"`
	Statut            string      `json:"statut" db:"statut"`
	Badges            StringArray `json:"badges" db:"badges"`
	NoteMoyenne       float64     `json:"noteMoyenne" db:"note_moyenne"`
	NombreEvaluations int         `json:"nombreEvaluations" db:"nombre_evaluations"`
	NombreAnnonces    int         `json:"nombreAnnonces" db:"nombre_annonces"`
	PhotoURL          *string     `json:"photoUrl,omitempty" db:"photo_url"`
	Adresse           *string     `json:"adresse,omitempty" db:"adresse"`
	CreatedAt         time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time   `json:"updatedAt" db:"updated_at"`
}

// ModerationEntry is one admin action recorded against a user account
type ModerationEntry struct {
	ID        int64      `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"userId" db:"user_id"`
	Action    string     `json:"action" db:"action"`
	Motif     *string    `json:"motif,omitempty" db:"motif"`
	AdminID   *uuid.UUID `json:"adminId,omitempty" db:"admin_id"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Nom        string `json:"nom"`
	Prenom     string `json:"prenom"`
	Email      string `json:"email"`
	Telephone  string `json:"telephone"`
	MotDePasse string `json:"motDePasse"`
	Role       string `json:"role"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email      string `json:"email"`
	MotDePasse string `json:"motDePasse"`
}

// UpdateProfileRequest is the profile update payload. Pointer fields are
// left untouched when absent.
type UpdateProfileRequest struct {
	Nom       *string `json:"nom,omitempty"`
	Prenom    *string `json:"prenom,omitempty"`
	Telephone *string `json:"telephone,omitempty"`
	PhotoURL  *string `json:"photoUrl,omitempty"`
	Adresse   *string `json:"adresse,omitempty"`
}

// ChangePasswordRequest is the password change payload
type ChangePasswordRequest struct {
	AncienMotDePasse  string `json:"ancienMotDePasse"`
	NouveauMotDePasse string `json:"nouveauMotDePasse"`
}

// ProfilPublic is the reduced view of a user exposed to other members
type ProfilPublic struct {
	ID                uuid.UUID   `json:"id"`
	Nom               string      `json:"nom"`
	Prenom            string      `json:"prenom"`
	Role              string      `json:"role"`
	Badges            StringArray `json:"badges"`
	NoteMoyenne       float64     `json:"noteMoyenne"`
	NombreEvaluations int         `json:"nombreEvaluations"`
	NombreAnnonces    int         `json:"nombreAnnonces"`
	PhotoURL          *string     `json:"photoUrl,omitempty"`
	MembreDepuis      time.Time   `json:"membreDepuis"`
}

// AuthResponse carries the issued token alongside the authenticated user
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	User      *User  `json:"user"`
}

// UserFilter narrows admin user listings
type UserFilter struct {
	Role      string
	Statut    string
	Recherche string
}
