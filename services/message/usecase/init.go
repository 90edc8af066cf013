package usecase

import (
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/message"
)

// MessageUC implements the chat business logic
type MessageUC struct {
	cfg         *models.Config
	messageRepo message.MessageRepo
	messageGW   message.MessageGW
	diffuseur   message.Diffuseur
}

// NewMessageUC creates a new chat usecase instance
func NewMessageUC(cfg *models.Config, messageRepo message.MessageRepo, messageGW message.MessageGW, diffuseur message.Diffuseur) *MessageUC {
	return &MessageUC{
		cfg:         cfg,
		messageRepo: messageRepo,
		messageGW:   messageGW,
		diffuseur:   diffuseur,
	}
}
