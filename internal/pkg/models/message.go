package models

import (
	"crypto/sha256"
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message content types (tagged union selector)
const (
	MessageTypeTexte        = "texte"
	MessageTypeLocalisation = "localisation"
	MessageTypePieceJointe  = "piece_jointe"
	MessageTypeSysteme      = "systeme"
)

// System message kinds
const (
	SystemeDemandeCreee = "demande_creee"
	SystemeStatutChange = "statut_change"
	SystemeLitige       = "litige"
)

// Localisation is a shared-location payload
type Localisation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Adresse   string  `json:"adresse"`
}

// PieceJointe is an attachment payload
type PieceJointe struct {
	URL      string `json:"url"`
	Nom      string `json:"nom"`
	Taille   int64  `json:"taille"`
	MimeType string `json:"mimeType"`
}

// Systeme is a typed system-message payload
type Systeme struct {
	Genre     string    `json:"genre"`
	DemandeID uuid.UUID `json:"demandeId"`
}

// Contenu is the tagged union of message payloads. Type selects which of the
// optional payloads is set.
type Contenu struct {
	Type         string        `json:"type"`
	Texte        *string       `json:"texte,omitempty"`
	Localisation *Localisation `json:"localisation,omitempty"`
	PieceJointe  *PieceJointe  `json:"pieceJointe,omitempty"`
	Systeme      *Systeme      `json:"systeme,omitempty"`
}

// Value implements driver.Valuer so the union is stored as one JSONB column
func (c Contenu) Value() (driver.Value, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (c *Contenu) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Contenu", src)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to unmarshal message content: %w", err)
	}
	return nil
}

// BuildConversationID derives the deterministic conversation key from the two
// participants and the listing. Participant order does not matter.
func BuildConversationID(a, b, annonceID uuid.UUID) string {
	lo, hi := a.String(), b.String()
	if lo > hi {
		lo, hi = hi, lo
	}
	sum := sha256.Sum256([]byte(lo + hi + annonceID.String()))
	return hex.EncodeToString(sum[:])
}

// Reaction is a single-slot-per-user emoji reaction
type Reaction struct {
	UserID uuid.UUID `json:"userId" db:"user_id"`
	Emoji  string    `json:"emoji" db:"emoji"`
}

// Message is one chat message inside a conversation
type Message struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	ConversationID  string     `json:"conversationId" db:"conversation_id"`
	ExpediteurID    uuid.UUID  `json:"expediteurId" db:"expediteur_id"`
	DestinataireID  uuid.UUID  `json:"destinataireId" db:"destinataire_id"`
	AnnonceID       uuid.UUID  `json:"annonceId" db:"annonce_id"`
	DemandeID       *uuid.UUID `json:"demandeId,omitempty" db:"demande_id"`
	Contenu         Contenu    `json:"contenu" db:"-"`
	Lu              bool       `json:"lu" db:"lu"`
	DateLecture     *time.Time `json:"dateLecture,omitempty" db:"date_lecture"`
	Supprime        bool       `json:"supprime" db:"supprime"`
	DateSuppression *time.Time `json:"dateSuppression,omitempty" db:"date_suppression"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`

	Reactions []*Reaction `json:"reactions,omitempty" db:"-"`
}

// SendMessageRequest is the message creation payload
type SendMessageRequest struct {
	DestinataireID uuid.UUID  `json:"destinataireId"`
	AnnonceID      uuid.UUID  `json:"annonceId"`
	DemandeID      *uuid.UUID `json:"demandeId,omitempty"`
	Contenu        Contenu    `json:"contenu"`
}

// ConversationSummary is one row of the conversation overview listing
type ConversationSummary struct {
	ConversationID string   `json:"conversationId"`
	Dernier        *Message `json:"dernierMessage"`
	NonLus         int      `json:"nonLus"`
}
