package repositories

import "errors"

// Sentinel errors shared by the gorm and in-memory implementations. Services
// translate these into apperrors values; anything else propagates unchanged.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrArtistNotFound      = errors.New("artist not found")
	ErrParlorNotFound      = errors.New("parlor not found")
	ErrGuestspotNotFound   = errors.New("guestspot not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrStaleUpdate means a compare-and-swap write matched zero rows: the
	// record changed status between the read and the write.
	ErrStaleUpdate = errors.New("record was modified concurrently")
)
