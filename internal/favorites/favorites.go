// Package favorites persists named locations for repeat lookup. Records
// are owned by this package and change only through explicit calls; the
// resolution pipeline never writes here.
package favorites

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weatherpoint/internal/apperr"
	"weatherpoint/internal/types"
)

// FavoriteLocation is a persisted named location.
type FavoriteLocation struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateParams carries a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Name      *string  `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Repository is the persistence contract. Implementations assign ids on
// insert and keep them stable for the record's lifetime.
type Repository interface {
	Insert(fav *FavoriteLocation) error
	Get(id int64) (*FavoriteLocation, error)
	List() ([]FavoriteLocation, error)
	Update(fav *FavoriteLocation) error
	Delete(id int64) error
}

// Service validates favorites and delegates persistence to a Repository.
type Service interface {
	Create(name string, latitude, longitude float64) (*FavoriteLocation, error)
	Get(id int64) (*FavoriteLocation, error)
	List() ([]FavoriteLocation, error)
	Update(id int64, params UpdateParams) (*FavoriteLocation, error)
	Delete(id int64) error
}

type favoritesService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a favorites service over the given repository
func NewService(repo Repository, logger *slog.Logger) Service {
	return &favoritesService{
		repo:   repo,
		logger: logger.With("component", "favorites-service"),
	}
}

func validate(name string, latitude, longitude float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("favorite name must not be empty: %w", apperr.ErrInvalidInput)
	}
	return types.NewCoords(latitude, longitude).Validate()
}

func (s *favoritesService) Create(name string, latitude, longitude float64) (*FavoriteLocation, error) {
	if err := validate(name, latitude, longitude); err != nil {
		return nil, err
	}

	fav := &FavoriteLocation{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
	}
	if err := s.repo.Insert(fav); err != nil {
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	s.logger.Info("created favorite", "id", fav.ID, "name", fav.Name)
	return fav, nil
}

func (s *favoritesService) Get(id int64) (*FavoriteLocation, error) {
	return s.repo.Get(id)
}

func (s *favoritesService) List() ([]FavoriteLocation, error) {
	return s.repo.List()
}

func (s *favoritesService) Update(id int64, params UpdateParams) (*FavoriteLocation, error) {
	fav, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		fav.Name = *params.Name
	}
	if params.Latitude != nil {
		fav.Latitude = *params.Latitude
	}
	if params.Longitude != nil {
		fav.Longitude = *params.Longitude
	}

	if err := validate(fav.Name, fav.Latitude, fav.Longitude); err != nil {
		return nil, err
	}

	if err := s.repo.Update(fav); err != nil {
		return nil, fmt.Errorf("failed to update favorite %d: %w", id, err)
	}

	s.logger.Info("updated favorite", "id", fav.ID, "name", fav.Name)
	return fav, nil
}

func (s *favoritesService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Info("deleted favorite", "id", id)
	return nil
}
