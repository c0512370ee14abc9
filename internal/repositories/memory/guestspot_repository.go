package memory

import (
	"sort"
	"time"

	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
)

type GuestspotRepository struct {
	store *Store
}

func NewGuestspotRepository(store *Store) *GuestspotRepository {
	return &GuestspotRepository{store: store}
}

var _ repositories.GuestspotRepository = (*GuestspotRepository)(nil)

func (r *GuestspotRepository) Create(gs *models.Guestspot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stampNew(&gs.BaseModel)
	r.store.guestspots[gs.ID] = *gs
	return nil
}

func (r *GuestspotRepository) FindByID(id string) (*models.Guestspot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	gs, ok := r.store.guestspots[id]
	if !ok {
		return nil, repositories.ErrGuestspotNotFound
	}
	return &gs, nil
}

func (r *GuestspotRepository) FindAll(filter repositories.GuestspotFilter) ([]models.Guestspot, error) {
	return r.collect(func(gs models.Guestspot) bool {
		if filter.Status != nil && gs.Status != *filter.Status {
			return false
		}
		if filter.ParlorID != "" && gs.ParlorID != filter.ParlorID {
			return false
		}
		if filter.ArtistID != "" && (gs.ArtistID == nil || *gs.ArtistID != filter.ArtistID) {
			return false
		}
		if filter.StartFrom != nil && gs.DateStart.Before(*filter.StartFrom) {
			return false
		}
		if filter.EndUntil != nil && gs.DateEnd.After(*filter.EndUntil) {
			return false
		}
		return true
	}, 0), nil
}

func (r *GuestspotRepository) FindUpcoming(now time.Time, limit int) ([]models.Guestspot, error) {
	return r.collect(func(gs models.Guestspot) bool {
		return gs.DateStart.After(now)
	}, limit), nil
}

func (r *GuestspotRepository) FindOpen(now time.Time, limit int) ([]models.Guestspot, error) {
	return r.collect(func(gs models.Guestspot) bool {
		unassigned := gs.ArtistID == nil || *gs.ArtistID == ""
		return gs.DateStart.After(now) && gs.Status == models.GuestspotStatusOpen && unassigned
	}, limit), nil
}

func (r *GuestspotRepository) Update(gs *models.Guestspot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.guestspots[gs.ID]; !ok {
		return repositories.ErrGuestspotNotFound
	}
	gs.UpdatedAt = time.Now()
	r.store.guestspots[gs.ID] = *gs
	return nil
}

func (r *GuestspotRepository) UpdateTransition(gs *models.Guestspot, fromStatus models.GuestspotStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.guestspots[gs.ID]
	if !ok {
		return repositories.ErrGuestspotNotFound
	}
	if current.Status != fromStatus {
		return repositories.ErrStaleUpdate
	}
	current.Status = gs.Status
	current.ArtistID = gs.ArtistID
	current.Applicants = gs.Applicants
	current.UpdatedAt = time.Now()
	r.store.guestspots[gs.ID] = current
	return nil
}

func (r *GuestspotRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.guestspots[id]; !ok {
		return repositories.ErrGuestspotNotFound
	}
	delete(r.store.guestspots, id)
	return nil
}

// collect returns matching spots sorted by dateStart ascending, matching the
// ordering the gorm implementation gets from ORDER BY.
func (r *GuestspotRepository) collect(match func(models.Guestspot) bool, limit int) []models.Guestspot {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Guestspot
	for _, gs := range r.store.guestspots {
		if match(gs) {
			out = append(out, gs)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateStart.Before(out[j].DateStart) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
