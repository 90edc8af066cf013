package usecase

import (
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/services/notification"
)

// NotificationUC implements the notification dispatch logic
type NotificationUC struct {
	cfg              *models.Config
	notificationRepo notification.NotificationRepo
	mailer           notification.Mailer
	notificateur     notification.Notificateur
}

// NewNotificationUC creates a new notification usecase instance
func NewNotificationUC(cfg *models.Config, notificationRepo notification.NotificationRepo, mailer notification.Mailer, notificateur notification.Notificateur) *NotificationUC {
	return &NotificationUC{
		cfg:              cfg,
		notificationRepo: notificationRepo,
		mailer:           mailer,
		notificateur:     notificateur,
	}
}
