package services

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"aivault-portal/internal/core/domain"
	ports "aivault-portal/internal/core/ports/output"
)

const passwordProvider = "password"

type AccountService struct {
	api      ports.PlatformClient
	sessions ports.SessionStore
}

func NewAccountService(api ports.PlatformClient, sessions ports.SessionStore) *AccountService {
	return &AccountService{api: api, sessions: sessions}
}

// RegisterInput is the sign-up form: the owner's account plus the details written onto the
// placeholder business the backend creates for every new user.
type RegisterInput struct {
	Email        string              `json:"email"`
	Password     string              `json:"password"`
	Name         string              `json:"name"`
	BusinessName string              `json:"business_name"`
	BusinessType domain.BusinessType `json:"business_type"`
	Address      string              `json:"address"`
}

func (in RegisterInput) validate() error {
	switch {
	case strings.TrimSpace(in.Email) == "":
		return domain.ErrMissingEmail
	case in.Password == "":
		return domain.ErrMissingPassword
	case strings.TrimSpace(in.BusinessName) == "" || strings.TrimSpace(in.Address) == "":
		return domain.ErrMissingBusiness
	}
	return nil
}

// Register creates the user, fills in the auto-created business and signs the owner in with
// both ids.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (domain.Session, error) {
	if err := in.validate(); err != nil {
		return domain.Session{}, err
	}
	if in.BusinessType == "" {
		in.BusinessType = domain.BusinessTypeRestaurant
	}

	create := domain.UserCreate{
		Email:        strings.TrimSpace(in.Email),
		AuthProvider: passwordProvider,
		PasswordHash: &in.Password,
	}
	if in.Name != "" {
		create.Name = &in.Name
	}
	user, err := s.api.CreateUser(ctx, create)
	if err != nil {
		return domain.Session{}, fmt.Errorf("create user: %w", err)
	}

	business, err := s.api.GetBusinessByOwner(ctx, user.ID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("find business for owner %s: %w", user.ID, err)
	}

	name, address := in.BusinessName, in.Address
	if _, err := s.api.UpdateBusiness(ctx, business.ID, domain.BusinessUpdate{
		Name:         &name,
		BusinessType: &in.BusinessType,
		Address:      &address,
	}); err != nil {
		return domain.Session{}, fmt.Errorf("update business %s: %w", business.ID, err)
	}

	sess := domain.Session{UserID: &user.ID, BusinessID: &business.ID}
	if err := s.sessions.Save(sess); err != nil {
		return domain.Session{}, err
	}

	log.WithFields(log.Fields{
		"user_id":     user.ID,
		"business_id": business.ID,
	}).Info("Registered new owner")

	return sess, nil
}

// Login stores the user id as soon as the credentials are accepted. A failed business lookup
// leaves the owner signed in without a business.
func (s *AccountService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if strings.TrimSpace(email) == "" {
		return domain.Session{}, domain.ErrMissingEmail
	}
	if password == "" {
		return domain.Session{}, domain.ErrMissingPassword
	}

	resp, err := s.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	userID := resp.UserID
	sess := domain.Session{UserID: &userID}
	if err := s.sessions.Save(sess); err != nil {
		return domain.Session{}, err
	}

	business, err := s.api.GetBusinessByOwner(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("No business found for owner")
		return sess, nil
	}

	sess.BusinessID = &business.ID
	if err := s.sessions.Save(sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

func (s *AccountService) Logout() error {
	return s.sessions.Clear()
}

func (s *AccountService) Current() (domain.Session, error) {
	return s.sessions.Load()
}
