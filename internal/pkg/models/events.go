package models

import (
	"time"

	"github.com/google/uuid"
)

// NSQ topics published by the API and consumed by the notifier
const (
	TopicUserRegistered       = "user.registered"
	TopicDemandeCreated       = "demande.created"
	TopicDemandeStatusChanged = "demande.status_changed"
	TopicEvaluationCreated    = "evaluation.created"
	TopicMessageSent          = "message.sent"
)

// UserRegisteredEvent announces a new account
type UserRegisteredEvent struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Prenom string    `json:"prenom"`
	Role   string    `json:"role"`
}

// DemandeCreatedEvent announces a new transport request to the listing's driver
type DemandeCreatedEvent struct {
	DemandeID    uuid.UUID `json:"demande_id"`
	AnnonceID    uuid.UUID `json:"annonce_id"`
	ExpediteurID uuid.UUID `json:"expediteur_id"`
	ConducteurID uuid.UUID `json:"conducteur_id"`
	PrixPropose  float64   `json:"prix_propose"`
}

// DemandeStatusChangedEvent announces a status transition to the counterpart
type DemandeStatusChangedEvent struct {
	DemandeID     uuid.UUID `json:"demande_id"`
	AncienStatut  string    `json:"ancien_statut"`
	NouveauStatut string    `json:"nouveau_statut"`
	ExpediteurID  uuid.UUID `json:"expediteur_id"`
	ConducteurID  uuid.UUID `json:"conducteur_id"`
	AuteurID      uuid.UUID `json:"auteur_id"`
	NumeroSuivi   string    `json:"numero_suivi,omitempty"`
	ChangedAt     time.Time `json:"changed_at"`
}

// EvaluationCreatedEvent announces a new rating to the rated user
type EvaluationCreatedEvent struct {
	EvaluationID uuid.UUID `json:"evaluation_id"`
	DemandeID    uuid.UUID `json:"demande_id"`
	EvaluateurID uuid.UUID `json:"evaluateur_id"`
	EvalueID     uuid.UUID `json:"evalue_id"`
	Note         float64   `json:"note"`
}

// MessageSentEvent lets the notifier push a live notification when the
// recipient is not currently joined to the conversation room
type MessageSentEvent struct {
	MessageID      uuid.UUID `json:"message_id"`
	ConversationID string    `json:"conversation_id"`
	ExpediteurID   uuid.UUID `json:"expediteur_id"`
	DestinataireID uuid.UUID `json:"destinataire_id"`
}
