package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// Predeclared errors for the frequent static cases. These are shared values:
// use WithDetails (which copies) rather than mutating them.

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Lookups ---

var (
	ErrUserNotFound        = New(CodeNotFound, "user", "User not found", http.StatusNotFound)
	ErrArtistNotFound      = New(CodeNotFound, "artist", "Artist not found", http.StatusNotFound)
	ErrParlorNotFound      = New(CodeNotFound, "parlor", "Parlor not found", http.StatusNotFound)
	ErrGuestspotNotFound   = New(CodeNotFound, "guestspot", "Guestspot not found", http.StatusNotFound)
	ErrReviewNotFound      = New(CodeNotFound, "review", "Review not found", http.StatusNotFound)
	ErrAppointmentNotFound = New(CodeNotFound, "appointment", "Appointment not found", http.StatusNotFound)
)

// --- Guestspot lifecycle ---

var (
	ErrGuestspotNotOpen = New(
		CodeInvalidStatus, "guestspot",
		"Guestspot is not open for applications",
		http.StatusBadRequest,
	)
	ErrGuestspotNotRequested = New(
		CodeInvalidStatus, "guestspot",
		"Guestspot is not in requested status",
		http.StatusBadRequest,
	)
	ErrGuestspotNotConfirmed = New(
		CodeInvalidStatus, "guestspot",
		"Only confirmed guestspots can be completed",
		http.StatusBadRequest,
	)
	ErrNotAnApplicant = New(
		CodeNotApplicant, "guestspot",
		"Artist is not an applicant for this guestspot",
		http.StatusBadRequest,
	)
	ErrNoApplicants = New(
		CodeNoApplicants, "guestspot",
		"No applicants found",
		http.StatusBadRequest,
	)
	ErrGuestspotNotEnded = New(
		CodeTooEarly, "guestspot",
		"Guestspot has not reached its end date yet",
		http.StatusBadRequest,
	)
	ErrDuplicateApplication = New(
		CodeAlreadyExists, "guestspot",
		"Artist has already applied to this guestspot",
		http.StatusConflict,
	)
	ErrGuestspotConflict = New(
		CodeConflict, "guestspot",
		"Guestspot was modified concurrently, retry the operation",
		http.StatusConflict,
	)
	ErrParlorImmutable = New(
		CodeValidationFailed, "guestspot",
		"Cannot update parlor ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = New(
		CodeValidationFailed, "guestspot",
		"dateEnd must be after dateStart",
		http.StatusBadRequest,
	)
)

// --- Reviews ---

var (
	ErrInvalidRating = New(
		CodeValidationFailed, "review",
		"Rating must be between 1 and 5",
		http.StatusBadRequest,
	)
	ErrInvalidTargetType = New(
		CodeValidationFailed, "review",
		"Invalid target type",
		http.StatusBadRequest,
	)
	ErrDuplicateReview = New(
		CodeAlreadyExists, "review",
		"You have already reviewed this target",
		http.StatusConflict,
	)
	ErrReviewFieldsImmutable = New(
		CodeValidationFailed, "review",
		"Cannot update restricted fields",
		http.StatusBadRequest,
	)
)
