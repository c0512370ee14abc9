// Package memory provides in-memory implementations of the repository
// interfaces. It exists so services can be exercised without Postgres; the
// gorm implementations remain the canonical store.
package memory

import (
	"sync"
	"time"

	"inklink_backend/internal/models"

	"github.com/google/uuid"
)

// Store holds every collection behind a single mutex. Operations that span
// collections (rating recompute) run entirely inside one lock section, which
// stands in for the transaction the gorm implementation uses.
type Store struct {
	mu           sync.Mutex
	users        map[string]models.User
	artists      map[string]models.Artist
	parlors      map[string]models.Parlor
	guestspots   map[string]models.Guestspot
	reviews      map[string]models.Review
	appointments map[string]models.Appointment
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]models.User),
		artists:      make(map[string]models.Artist),
		parlors:      make(map[string]models.Parlor),
		guestspots:   make(map[string]models.Guestspot),
		reviews:      make(map[string]models.Review),
		appointments: make(map[string]models.Appointment),
	}
}

// setArtistRatingLocked writes the denormalized rating/count pair onto the
// artist. Callers must hold s.mu. Reports whether the artist exists.
func (s *Store) setArtistRatingLocked(id string, rating float64, count int64) bool {
	artist, ok := s.artists[id]
	if !ok {
		return false
	}
	artist.Rating = rating
	artist.ReviewCount = count
	artist.UpdatedAt = time.Now()
	s.artists[id] = artist
	return true
}

// setParlorRatingLocked is the parlor counterpart of setArtistRatingLocked.
func (s *Store) setParlorRatingLocked(id string, rating float64, count int64) bool {
	parlor, ok := s.parlors[id]
	if !ok {
		return false
	}
	parlor.Rating = rating
	parlor.ReviewCount = count
	parlor.UpdatedAt = time.Now()
	s.parlors[id] = parlor
	return true
}

func stampNew(b *models.BaseModel) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
