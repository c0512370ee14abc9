package validator

import (
	"inklink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

func registerRules(v *validator.Validate) {
	v.RegisterValidation("is-user-role", isUserRole)
	v.RegisterValidation("is-guestspot-status", isGuestspotStatus)
	v.RegisterValidation("is-target-type", isTargetType)
	v.RegisterValidation("is-appointment-status", isAppointmentStatus)
}

func isUserRole(fl validator.FieldLevel) bool {
	return models.UserRole(fl.Field().String()).Valid()
}

func isGuestspotStatus(fl validator.FieldLevel) bool {
	return models.GuestspotStatus(fl.Field().String()).Valid()
}

func isTargetType(fl validator.FieldLevel) bool {
	return models.ReviewTargetType(fl.Field().String()).Valid()
}

func isAppointmentStatus(fl validator.FieldLevel) bool {
	return models.AppointmentStatus(fl.Field().String()).Valid()
}
