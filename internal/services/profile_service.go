package services

import (
	"context"
	"fmt"
	"log"

	"seller_panel/internal/models"
	"seller_panel/internal/session"
	"seller_panel/pkg/adminapi"
)

type ProfileService interface {
	// Profile returns the seller's profile both in its nested remote
	// shape and flattened for editing.
	Profile(ctx context.Context, sellerID int64) (*models.SellerProfile, models.ProfileForm, error)
	// Save patches the profile and returns the re-fetched, re-flattened
	// form so callers render what the backend actually stored.
	Save(ctx context.Context, sellerID int64, form models.ProfileForm, files []models.FileAttachment) (models.ProfileForm, error)
}

type profileService struct {
	api   *adminapi.Client
	store *session.Store
}

func NewProfileService(api *adminapi.Client, store *session.Store) ProfileService {
	return &profileService{api: api, store: store}
}

func (s *profileService) Profile(ctx context.Context, sellerID int64) (*models.SellerProfile, models.ProfileForm, error) {
	profile, err := s.api.Seller(ctx, sellerID)
	if err != nil {
		return nil, models.ProfileForm{}, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return profile, models.FlattenProfile(profile), nil
}

func (s *profileService) Save(ctx context.Context, sellerID int64, form models.ProfileForm, files []models.FileAttachment) (models.ProfileForm, error) {
	if err := s.api.UpdateSellerProfile(ctx, sellerID, &form, files); err != nil {
		return models.ProfileForm{}, fmt.Errorf("failed to save profile: %w", err)
	}

	profile, err := s.api.Seller(ctx, sellerID)
	if err != nil {
		// The save landed; surface the submitted form rather than failing.
		log.Printf("Profile saved but re-fetch failed for seller %d: %v", sellerID, err)
		return form, nil
	}

	// Keep the cached session identity current so the header and the
	// approval gate reflect the save immediately.
	if user, lerr := s.store.LoadUser(ctx); lerr == nil && user.ID == sellerID {
		updated := models.UserFromProfile(profile, user.ID, user.Email, user.Name)
		if serr := s.store.SaveUser(ctx, &updated); serr != nil {
			log.Printf("Could not update cached session for seller %d: %v", sellerID, serr)
		}
	}

	return models.FlattenProfile(profile), nil
}
