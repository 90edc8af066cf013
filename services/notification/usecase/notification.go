package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

// Notification types carried in the websocket payload
const (
	TypeNouvelleDemande    = "nouvelle_demande"
	TypeChangementStatut   = "changement_statut"
	TypeNouvelleEvaluation = "nouvelle_evaluation"
	TypeNouveauMessage     = "nouveau_message"
)

// HandleUserRegistered sends the welcome email. The event carries the
// address, so no lookup is needed.
func (u *NotificationUC) HandleUserRegistered(ctx context.Context, event *models.UserRegisteredEvent) error {
	body := fmt.Sprintf(
		"Bonjour %s,\n\nBienvenue sur TransportConnect ! Votre compte %s est prêt.\n\nÀ bientôt sur la route.",
		event.Prenom, event.Role)
	u.mailer.Send(event.Email, "Bienvenue sur TransportConnect", body)

	logger.Info("Welcome email dispatched",
		logger.String("user_id", event.UserID.String()))
	return nil
}

// HandleDemandeCreated notifies the driver that a sender wants a slot on
// their listing
func (u *NotificationUC) HandleDemandeCreated(ctx context.Context, event *models.DemandeCreatedEvent) error {
	message := fmt.Sprintf("Nouvelle demande de transport à %.2f MAD sur votre annonce", event.PrixPropose)

	u.notificateur.NotifyClient(event.ConducteurID.String(), models.EventNotification,
		&models.WSNotification{Type: TypeNouvelleDemande, Message: message, Data: event})

	return u.envoyerEmail(ctx, event.ConducteurID, "Nouvelle demande de transport",
		message+".\nConnectez-vous pour l'accepter ou la refuser.")
}

// HandleDemandeStatusChanged notifies the party that did not perform the
// transition
func (u *NotificationUC) HandleDemandeStatusChanged(ctx context.Context, event *models.DemandeStatusChangedEvent) error {
	destinataire := event.ExpediteurID
	if event.AuteurID == event.ExpediteurID {
		destinataire = event.ConducteurID
	}

	message := libelleStatut(event.NouveauStatut)
	if event.NumeroSuivi != "" {
		message += " Numéro de suivi : " + event.NumeroSuivi + "."
	}

	u.notificateur.NotifyClient(destinataire.String(), models.EventNotification,
		&models.WSNotification{Type: TypeChangementStatut, Message: message, Data: event})

	return u.envoyerEmail(ctx, destinataire, "Votre demande de transport a changé de statut", message)
}

func libelleStatut(statut string) string {
	switch statut {
	case models.DemandeStatutAcceptee:
		return "Votre demande a été acceptée."
	case models.DemandeStatutRefusee:
		return "Votre demande a été refusée."
	case models.DemandeStatutEnCours:
		return "Le transport de votre colis démarre."
	case models.DemandeStatutEnlevee:
		return "Votre colis a été enlevé."
	case models.DemandeStatutTransit:
		return "Votre colis est en transit."
	case models.DemandeStatutLivree:
		return "Votre colis a été livré."
	case models.DemandeStatutAnnulee:
		return "La demande a été annulée."
	case models.DemandeStatutLitige:
		return "Un litige a été ouvert sur la demande."
	}
	return fmt.Sprintf("La demande est passée au statut %q.", statut)
}

// HandleEvaluationCreated notifies the rated member
func (u *NotificationUC) HandleEvaluationCreated(ctx context.Context, event *models.EvaluationCreatedEvent) error {
	message := fmt.Sprintf("Vous avez reçu une nouvelle évaluation : %.1f/5.", event.Note)

	u.notificateur.NotifyClient(event.EvalueID.String(), models.EventNotification,
		&models.WSNotification{Type: TypeNouvelleEvaluation, Message: message, Data: event})

	return u.envoyerEmail(ctx, event.EvalueID, "Nouvelle évaluation reçue", message)
}

// HandleMessageSent pushes a live notification to a recipient who was not in
// the conversation room when the message arrived
func (u *NotificationUC) HandleMessageSent(ctx context.Context, event *models.MessageSentEvent) error {
	u.notificateur.NotifyClient(event.DestinataireID.String(), models.EventNotification,
		&models.WSNotification{Type: TypeNouveauMessage, Message: "Vous avez reçu un nouveau message.", Data: event})

	return u.envoyerEmail(ctx, event.DestinataireID, "Nouveau message sur TransportConnect",
		"Vous avez reçu un nouveau message. Connectez-vous pour y répondre.")
}

// envoyerEmail resolves the recipient and hands the email to the mailer.
// A vanished account is logged and dropped so the event is not requeued
// forever; any other lookup failure propagates for a retry.
func (u *NotificationUC) envoyerEmail(ctx context.Context, userID uuid.UUID, subject, body string) error {
	user, err := u.notificationRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			logger.Warn("Notification recipient no longer exists",
				logger.String("user_id", userID.String()))
			return nil
		}
		return fmt.Errorf("failed to resolve notification recipient: %w", err)
	}

	u.mailer.Send(user.Email, subject, fmt.Sprintf("Bonjour %s,\n\n%s", user.Prenom, body))
	return nil
}
