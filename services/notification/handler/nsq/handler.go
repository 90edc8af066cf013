package nsq

import (
	"context"
	"strings"

	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	nsqpkg "github.com/transportconnect/transportconnect/internal/pkg/nsq"
	"github.com/transportconnect/transportconnect/services/notification"
)

// NotificationHandler consumes the domain topics and dispatches each event to
// the notification usecase. A malformed payload is dropped instead of
// requeued; a dispatch failure is returned so NSQ retries it.
type NotificationHandler struct {
	cfg            *models.Config
	notificationUC notification.NotificationUC
	consumers      []*nsqpkg.Consumer
}

// NewNotificationHandler creates a new NSQ notification handler
func NewNotificationHandler(cfg *models.Config, notificationUC notification.NotificationUC) *NotificationHandler {
	return &NotificationHandler{
		cfg:            cfg,
		notificationUC: notificationUC,
	}
}

// InitConsumers subscribes to every notification topic
func (h *NotificationHandler) InitConsumers() error {
	abonnements := []struct {
		topic   string
		handler nsqpkg.MessageHandler
	}{
		{models.TopicUserRegistered, h.handleUserRegistered},
		{models.TopicDemandeCreated, h.handleDemandeCreated},
		{models.TopicDemandeStatusChanged, h.handleDemandeStatusChanged},
		{models.TopicEvaluationCreated, h.handleEvaluationCreated},
		{models.TopicMessageSent, h.handleMessageSent},
	}

	for _, a := range abonnements {
		consumer, err := nsqpkg.NewConsumer(a.topic, h.cfg.NSQ.Channel, h.cfg.NSQ.NSQDAddress, a.handler)
		if err != nil {
			return err
		}
		if h.cfg.NSQ.LookupdAddress != "" {
			if err := consumer.ConnectToLookupd(strings.Split(h.cfg.NSQ.LookupdAddress, ",")); err != nil {
				return err
			}
		}
		h.consumers = append(h.consumers, consumer)
		logger.Info("Subscribed to topic", logger.String("topic", a.topic))
	}
	return nil
}

// Stop gracefully stops every consumer
func (h *NotificationHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}

func (h *NotificationHandler) handleUserRegistered(message []byte) error {
	var event models.UserRegisteredEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return h.abandonner(models.TopicUserRegistered, err)
	}
	return h.notificationUC.HandleUserRegistered(context.Background(), &event)
}

func (h *NotificationHandler) handleDemandeCreated(message []byte) error {
	var event models.DemandeCreatedEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return h.abandonner(models.TopicDemandeCreated, err)
	}
	return h.notificationUC.HandleDemandeCreated(context.Background(), &event)
}

func (h *NotificationHandler) handleDemandeStatusChanged(message []byte) error {
	var event models.DemandeStatusChangedEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return h.abandonner(models.TopicDemandeStatusChanged, err)
	}
	return h.notificationUC.HandleDemandeStatusChanged(context.Background(), &event)
}

func (h *NotificationHandler) handleEvaluationCreated(message []byte) error {
	var event models.EvaluationCreatedEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return h.abandonner(models.TopicEvaluationCreated, err)
	}
	return h.notificationUC.HandleEvaluationCreated(context.Background(), &event)
}

func (h *NotificationHandler) handleMessageSent(message []byte) error {
	var event models.MessageSentEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return h.abandonner(models.TopicMessageSent, err)
	}
	return h.notificationUC.HandleMessageSent(context.Background(), &event)
}

// abandonner drops a payload that will never unmarshal. Requeuing it would
// poison the channel.
func (h *NotificationHandler) abandonner(topic string, err error) error {
	logger.Warn("Dropping malformed event",
		logger.String("topic", topic),
		logger.Err(err))
	return nil
}
