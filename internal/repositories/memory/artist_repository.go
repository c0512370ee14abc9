package memory

import (
	"sort"
	"strings"
	"time"

	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
)

type ArtistRepository struct {
	store *Store
}

func NewArtistRepository(store *Store) *ArtistRepository {
	return &ArtistRepository{store: store}
}

var _ repositories.ArtistRepository = (*ArtistRepository)(nil)

func (r *ArtistRepository) Create(artist *models.Artist) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stampNew(&artist.BaseModel)
	r.store.artists[artist.ID] = *artist
	return nil
}

func (r *ArtistRepository) FindByID(id string) (*models.Artist, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	artist, ok := r.store.artists[id]
	if !ok {
		return nil, repositories.ErrArtistNotFound
	}
	return &artist, nil
}

func (r *ArtistRepository) FindByUserID(userID string) (*models.Artist, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, artist := range r.store.artists {
		if artist.UserID == userID {
			a := artist
			return &a, nil
		}
	}
	return nil, repositories.ErrArtistNotFound
}

func (r *ArtistRepository) FindByParlorID(parlorID string) ([]models.Artist, error) {
	return r.collect(func(a models.Artist) bool {
		return a.ParlorID != nil && *a.ParlorID == parlorID
	}, 0), nil
}

func (r *ArtistRepository) FindAll(filter repositories.ArtistFilter) ([]models.Artist, error) {
	return r.collect(func(a models.Artist) bool {
		if filter.City != "" && a.City != filter.City {
			return false
		}
		if filter.State != "" && a.State != filter.State {
			return false
		}
		if filter.Country != "" && a.Country != filter.Country {
			return false
		}
		if filter.ParlorID != "" && (a.ParlorID == nil || *a.ParlorID != filter.ParlorID) {
			return false
		}
		if filter.Featured != nil && a.Featured != *filter.Featured {
			return false
		}
		if filter.Sponsored != nil && a.Sponsored != *filter.Sponsored {
			return false
		}
		return true
	}, 0), nil
}

func (r *ArtistRepository) FindFeatured(limit int) ([]models.Artist, error) {
	return r.collect(func(a models.Artist) bool { return a.Featured }, limit), nil
}

func (r *ArtistRepository) FindSponsored(limit int) ([]models.Artist, error) {
	return r.collect(func(a models.Artist) bool { return a.Sponsored }, limit), nil
}

func (r *ArtistRepository) FindTraveling(limit int) ([]models.Artist, error) {
	return r.collect(func(a models.Artist) bool { return a.TravelWilling }, limit), nil
}

func (r *ArtistRepository) Search(term string, limit int) ([]models.Artist, error) {
	needle := strings.ToLower(term)
	return r.collect(func(a models.Artist) bool {
		haystacks := []string{a.Name, a.Bio, a.City, a.State, a.Country, string(a.Specialties)}
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				return true
			}
		}
		return false
	}, limit), nil
}

func (r *ArtistRepository) Update(artist *models.Artist) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.artists[artist.ID]; !ok {
		return repositories.ErrArtistNotFound
	}
	artist.UpdatedAt = time.Now()
	r.store.artists[artist.ID] = *artist
	return nil
}

func (r *ArtistRepository) UpdateRating(id string, rating float64, count int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.setArtistRatingLocked(id, rating, count) {
		return repositories.ErrArtistNotFound
	}
	return nil
}

func (r *ArtistRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.artists[id]; !ok {
		return repositories.ErrArtistNotFound
	}
	delete(r.store.artists, id)
	return nil
}

func (r *ArtistRepository) collect(match func(models.Artist) bool, limit int) []models.Artist {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Artist
	for _, artist := range r.store.artists {
		if match(artist) {
			out = append(out, artist)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
