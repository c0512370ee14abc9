package memory

import (
	"sort"
	"strings"
	"time"

	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
)

type ParlorRepository struct {
	store *Store
}

func NewParlorRepository(store *Store) *ParlorRepository {
	return &ParlorRepository{store: store}
}

var _ repositories.ParlorRepository = (*ParlorRepository)(nil)

func (r *ParlorRepository) Create(parlor *models.Parlor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stampNew(&parlor.BaseModel)
	r.store.parlors[parlor.ID] = *parlor
	return nil
}

func (r *ParlorRepository) FindByID(id string) (*models.Parlor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	parlor, ok := r.store.parlors[id]
	if !ok {
		return nil, repositories.ErrParlorNotFound
	}
	return &parlor, nil
}

func (r *ParlorRepository) FindByOwnerID(ownerID string) ([]models.Parlor, error) {
	return r.collect(func(p models.Parlor) bool { return p.OwnerID == ownerID }, 0), nil
}

func (r *ParlorRepository) FindAll(filter repositories.ParlorFilter) ([]models.Parlor, error) {
	return r.collect(func(p models.Parlor) bool {
		if filter.City != "" && p.City != filter.City {
			return false
		}
		if filter.State != "" && p.State != filter.State {
			return false
		}
		if filter.Country != "" && p.Country != filter.Country {
			return false
		}
		if filter.OwnerID != "" && p.OwnerID != filter.OwnerID {
			return false
		}
		if filter.Featured != nil && p.Featured != *filter.Featured {
			return false
		}
		if filter.Sponsored != nil && p.Sponsored != *filter.Sponsored {
			return false
		}
		return true
	}, 0), nil
}

func (r *ParlorRepository) FindFeatured(limit int) ([]models.Parlor, error) {
	return r.collect(func(p models.Parlor) bool { return p.Featured }, limit), nil
}

func (r *ParlorRepository) FindSponsored(limit int) ([]models.Parlor, error) {
	return r.collect(func(p models.Parlor) bool { return p.Sponsored }, limit), nil
}

func (r *ParlorRepository) Search(term string, limit int) ([]models.Parlor, error) {
	needle := strings.ToLower(term)
	return r.collect(func(p models.Parlor) bool {
		haystacks := []string{
			p.Name, p.Description, p.Address, p.City, p.State,
			p.Country, p.PostalCode, string(p.Amenities),
		}
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				return true
			}
		}
		return false
	}, limit), nil
}

func (r *ParlorRepository) Update(parlor *models.Parlor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.parlors[parlor.ID]; !ok {
		return repositories.ErrParlorNotFound
	}
	parlor.UpdatedAt = time.Now()
	r.store.parlors[parlor.ID] = *parlor
	return nil
}

func (r *ParlorRepository) UpdateRating(id string, rating float64, count int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.setParlorRatingLocked(id, rating, count) {
		return repositories.ErrParlorNotFound
	}
	return nil
}

func (r *ParlorRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.parlors[id]; !ok {
		return repositories.ErrParlorNotFound
	}
	delete(r.store.parlors, id)
	return nil
}

func (r *ParlorRepository) collect(match func(models.Parlor) bool, limit int) []models.Parlor {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Parlor
	for _, parlor := range r.store.parlors {
		if match(parlor) {
			out = append(out, parlor)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
