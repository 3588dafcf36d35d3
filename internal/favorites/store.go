package favorites

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidFavorite indicates a save request with a blank name or
// non-finite coordinates.
var ErrInvalidFavorite = errors.New("favorite requires a name and finite coordinates")

// Store persists favorite places.
type Store interface {
	// List returns all favorites, newest first.
	List() ([]Favorite, error)
	// Create saves a place. If a favorite already exists at the same
	// coordinates the existing record is returned unchanged; the first
	// saved name wins.
	Create(name string, lat, lon float64) (*Favorite, error)
	// Delete removes a favorite by id. Deleting an absent id is not an
	// error.
	Delete(id string) error
}

type gormStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewStore creates a favorites store on the given database handle.
func NewStore(db *gorm.DB, logger *slog.Logger) Store {
	return &gormStore{
		db:     db,
		logger: logger.With("component", "favorites-store"),
	}
}

func (s *gormStore) List() ([]Favorite, error) {
	favorites := make([]Favorite, 0)
	if err := s.db.Order("created_at DESC").Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

func (s *gormStore) Create(name string, lat, lon float64) (*Favorite, error) {
	if strings.TrimSpace(name) == "" || !isFinite(lat) || !isFinite(lon) {
		return nil, ErrInvalidFavorite
	}

	if existing, err := s.findByCoords(lat, lon); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	favorite := &Favorite{
		ID:        uuid.NewString(),
		Name:      name,
		Lat:       lat,
		Lon:       lon,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(favorite).Error; err != nil {
		// A concurrent save for the same coordinates may have won the
		// unique index race; return whichever record is in place.
		if existing, lookupErr := s.findByCoords(lat, lon); lookupErr == nil && existing != nil {
			s.logger.Debug("concurrent save for same coordinates, returning existing record",
				"lat", lat,
				"lon", lon,
				"id", existing.ID,
			)
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	return favorite, nil
}

func (s *gormStore) Delete(id string) error {
	result := s.db.Delete(&Favorite{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		s.logger.Debug("delete for absent favorite", "id", id)
	}
	return nil
}

func (s *gormStore) findByCoords(lat, lon float64) (*Favorite, error) {
	var favorite Favorite
	err := s.db.Where("lat = ? AND lon = ?", lat, lon).First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up favorite: %w", err)
	}
	return &favorite, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
