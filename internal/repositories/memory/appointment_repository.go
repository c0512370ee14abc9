package memory

import (
	"sort"
	"time"

	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
)

type AppointmentRepository struct {
	store *Store
}

func NewAppointmentRepository(store *Store) *AppointmentRepository {
	return &AppointmentRepository{store: store}
}

var _ repositories.AppointmentRepository = (*AppointmentRepository)(nil)

func (r *AppointmentRepository) Create(appt *models.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stampNew(&appt.BaseModel)
	r.store.appointments[appt.ID] = *appt
	return nil
}

func (r *AppointmentRepository) FindByID(id string) (*models.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	appt, ok := r.store.appointments[id]
	if !ok {
		return nil, repositories.ErrAppointmentNotFound
	}
	return &appt, nil
}

func (r *AppointmentRepository) FindByArtist(artistID string) ([]models.Appointment, error) {
	return r.collect(func(a models.Appointment) bool { return a.ArtistID == artistID }), nil
}

func (r *AppointmentRepository) FindByClient(clientID string) ([]models.Appointment, error) {
	return r.collect(func(a models.Appointment) bool { return a.ClientID == clientID }), nil
}

func (r *AppointmentRepository) FindByParlor(parlorID string) ([]models.Appointment, error) {
	return r.collect(func(a models.Appointment) bool {
		return a.ParlorID != nil && *a.ParlorID == parlorID
	}), nil
}

func (r *AppointmentRepository) FindByArtistInRange(artistID string, from, to time.Time) ([]models.Appointment, error) {
	return r.collect(func(a models.Appointment) bool {
		return a.ArtistID == artistID && a.StartTime.Before(to) && a.EndTime.After(from)
	}), nil
}

func (r *AppointmentRepository) FindByParlorInRange(parlorID string, from, to time.Time) ([]models.Appointment, error) {
	return r.collect(func(a models.Appointment) bool {
		return a.ParlorID != nil && *a.ParlorID == parlorID &&
			a.StartTime.Before(to) && a.EndTime.After(from)
	}), nil
}

func (r *AppointmentRepository) Update(appt *models.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.appointments[appt.ID]; !ok {
		return repositories.ErrAppointmentNotFound
	}
	appt.UpdatedAt = time.Now()
	r.store.appointments[appt.ID] = *appt
	return nil
}

func (r *AppointmentRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.appointments[id]; !ok {
		return repositories.ErrAppointmentNotFound
	}
	delete(r.store.appointments, id)
	return nil
}

func (r *AppointmentRepository) collect(match func(models.Appointment) bool) []models.Appointment {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Appointment
	for _, appt := range r.store.appointments {
		if match(appt) {
			out = append(out, appt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}
