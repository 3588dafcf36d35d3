package favorites

import "time"

// Favorite is a saved place. The composite unique index on (lat, lon) makes
// creation idempotent by coordinate even under concurrent saves.
type Favorite struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null"`
	Lat       float64   `json:"lat" gorm:"not null;uniqueIndex:idx_favorites_coords"`
	Lon       float64   `json:"lon" gorm:"not null;uniqueIndex:idx_favorites_coords"`
	CreatedAt time.Time `json:"createdAt"`
}
