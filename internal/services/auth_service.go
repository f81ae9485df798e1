package services

import (
	"context"
	"log"
	"strings"

	"seller_panel/internal/models"
	"seller_panel/internal/session"
	"seller_panel/pkg/adminapi"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.SessionUser, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.SessionUser, error)
}

type authService struct {
	api   *adminapi.Client
	store *session.Store
}

func NewAuthService(api *adminapi.Client, store *session.Store) AuthService {
	return &authService{api: api, store: store}
}

// Login authenticates against the remote API, then enriches the session
// with the full seller profile. A failed detail fetch degrades to the
// basic login identity instead of failing the login.
func (s *authService) Login(ctx context.Context, email, password string) (*models.SessionUser, error) {
	seller, err := s.api.Login(ctx, strings.TrimSpace(email), strings.TrimSpace(password))
	if err != nil {
		return nil, err
	}

	user := models.SessionUser{
		ID:    seller.ID,
		Email: seller.Email,
		Name:  seller.Name,
	}
	if user.Name == "" {
		user.Name = user.Email
	}

	profile, err := s.api.Seller(ctx, seller.ID)
	if err != nil {
		log.Printf("Could not fetch seller details after login, using basic data: %v", err)
	} else {
		user = models.UserFromProfile(profile, seller.ID, seller.Email, seller.Name)
	}

	if err := s.store.SaveUser(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *authService) CurrentUser(ctx context.Context) (*models.SessionUser, error) {
	return s.store.LoadUser(ctx)
}
