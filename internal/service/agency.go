package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/travelflow/tripflow/internal/domain"
	"github.com/travelflow/tripflow/internal/repo"
)

// AgencyService manages the single agency profile.
type AgencyService struct {
	repo repo.AgencyRepo
}

// NewAgencyService constructs an AgencyService backed by the provided
// AgencyRepo.
func NewAgencyService(r repo.AgencyRepo) *AgencyService {
	return &AgencyService{repo: r}
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Get returns the stored agency profile.
func (s *AgencyService) Get(ctx context.Context) (domain.AgencyProfile, error) {
	return s.repo.Get(ctx)
}

// Update validates and replaces the agency profile.
func (s *AgencyService) Update(ctx context.Context, profile domain.AgencyProfile) (domain.AgencyProfile, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return domain.AgencyProfile{}, fmt.Errorf("%w: agency name is required", domain.ErrValidation)
	}
	if profile.PrimaryColor == "" {
		profile.PrimaryColor = domain.DefaultAgency().PrimaryColor
	}
	if !hexColor.MatchString(profile.PrimaryColor) {
		return domain.AgencyProfile{}, fmt.Errorf("%w: primaryColor must be a #rrggbb value", domain.ErrValidation)
	}
	if err := s.repo.Put(ctx, profile); err != nil {
		return domain.AgencyProfile{}, err
	}
	return profile, nil
}
