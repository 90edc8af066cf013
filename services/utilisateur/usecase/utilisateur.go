package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/transportconnect/transportconnect/internal/pkg/jwt"
	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/internal/utils"
)

const minPasswordLength = 8

// Register creates a driver or sender account and returns a fresh session.
// Admin accounts are provisioned out of band, never through this endpoint.
func (uc *UtilisateurUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Role != models.RoleConducteur && req.Role != models.RoleExpediteur {
		return nil, fmt.Errorf("%w: role must be conducteur or expediteur", models.ErrValidation)
	}
	if req.Nom == "" || req.Prenom == "" {
		return nil, fmt.Errorf("%w: nom and prenom are required", models.ErrValidation)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email address", models.ErrValidation)
	}
	if req.Telephone != "" && !utils.IsValidPhoneNumber(req.Telephone) {
		return nil, fmt.Errorf("%w: invalid phone number", models.ErrValidation)
	}
	if len(req.MotDePasse) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", models.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.MotDePasse), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		Nom:        req.Nom,
		Prenom:     req.Prenom,
		Email:      req.Email,
		Telephone:  req.Telephone,
		MotDePasse: string(hash),
		Role:       req.Role,
		Statut:     models.UserStatutActif,
	}

	if err := uc.utilisateurRepo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	if err := uc.utilisateurGW.PublishUserRegistered(ctx, &models.UserRegisteredEvent{
		UserID: u.ID,
		Email:  u.Email,
		Prenom: u.Prenom,
		Role:   u.Role,
	}); err != nil {
		logger.Warn("Failed to publish user.registered", logger.Err(err))
	}

	logger.Info("User registered",
		logger.String("user_id", u.ID.String()),
		logger.String("role", u.Role))
	return uc.issueSession(u)
}

// Login authenticates by email and password
func (uc *UtilisateurUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	u, err := uc.utilisateurRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		// same answer whether the account exists or not
		return nil, fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.MotDePasse), []byte(req.MotDePasse)); err != nil {
		logger.Warn("Login failed", logger.String("email", utils.MaskEmail(req.Email)))
		return nil, fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}

	if u.Statut == models.UserStatutSuspendu {
		return nil, fmt.Errorf("%w: account suspended", models.ErrForbidden)
	}

	logger.Info("User logged in", logger.String("user_id", u.ID.String()))
	return uc.issueSession(u)
}

func (uc *UtilisateurUC) issueSession(u *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwt.GenerateToken(u.ID, u.Email, u.Role, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AuthResponse{Token: token, ExpiresAt: expiresAt, User: u}, nil
}

// GetProfile returns the caller's full account
func (uc *UtilisateurUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.utilisateurRepo.GetUserByID(ctx, userID)
}

// GetPublicProfile returns the reduced view shown to other members
func (uc *UtilisateurUC) GetPublicProfile(ctx context.Context, userID uuid.UUID) (*models.ProfilPublic, error) {
	u, err := uc.utilisateurRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.ProfilPublic{
		ID:                u.ID,
		Nom:               u.Nom,
		Prenom:            u.Prenom,
		Role:              u.Role,
		Badges:            u.Badges,
		NoteMoyenne:       u.NoteMoyenne,
		NombreEvaluations: u.NombreEvaluations,
		NombreAnnonces:    u.NombreAnnonces,
		PhotoURL:          u.PhotoURL,
		MembreDepuis:      u.CreatedAt,
	}, nil
}

// UpdateProfile patches the caller's own mutable fields
func (uc *UtilisateurUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	u, err := uc.utilisateurRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Nom != nil {
		if *req.Nom == "" {
			return nil, fmt.Errorf("%w: nom cannot be empty", models.ErrValidation)
		}
		u.Nom = *req.Nom
	}
	if req.Prenom != nil {
		if *req.Prenom == "" {
			return nil, fmt.Errorf("%w: prenom cannot be empty", models.ErrValidation)
		}
		u.Prenom = *req.Prenom
	}
	if req.Telephone != nil {
		if *req.Telephone != "" && !utils.IsValidPhoneNumber(*req.Telephone) {
			return nil, fmt.Errorf("%w: invalid phone number", models.ErrValidation)
		}
		u.Telephone = *req.Telephone
	}
	if req.PhotoURL != nil {
		u.PhotoURL = req.PhotoURL
	}
	if req.Adresse != nil {
		u.Adresse = req.Adresse
	}

	if err := uc.utilisateurRepo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ChangePassword verifies the current password before replacing it
func (uc *UtilisateurUC) ChangePassword(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) error {
	if len(req.NouveauMotDePasse) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", models.ErrValidation, minPasswordLength)
	}
	if req.NouveauMotDePasse == req.AncienMotDePasse {
		return fmt.Errorf("%w: new password must differ from the current one", models.ErrValidation)
	}

	u, err := uc.utilisateurRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.MotDePasse), []byte(req.AncienMotDePasse)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", models.ErrUnauthorized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NouveauMotDePasse), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.utilisateurRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	logger.Info("Password changed", logger.String("user_id", userID.String()))
	return nil
}

// DeleteAccount anonymizes the account in place. References from listings,
// transports and ratings stay intact.
func (uc *UtilisateurUC) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := uc.utilisateurRepo.AnonymizeUser(ctx, userID); err != nil {
		return err
	}
	logger.Info("Account anonymized", logger.String("user_id", userID.String()))
	return nil
}
