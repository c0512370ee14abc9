package models

type UserRole string
type GuestspotStatus string
type ReviewTargetType string
type AppointmentStatus string

const (
	UserRoleUser        UserRole = "user"
	UserRoleArtist      UserRole = "artist"
	UserRoleParlorOwner UserRole = "parlor_owner"
	UserRoleAdmin       UserRole = "admin"

	GuestspotStatusOpen      GuestspotStatus = "open"
	GuestspotStatusRequested GuestspotStatus = "requested"
	GuestspotStatusConfirmed GuestspotStatus = "confirmed"
	GuestspotStatusCompleted GuestspotStatus = "completed"
	GuestspotStatusCancelled GuestspotStatus = "cancelled"

	TargetTypeArtist ReviewTargetType = "artist"
	TargetTypeParlor ReviewTargetType = "parlor"

	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

func (s GuestspotStatus) Valid() bool {
	switch s {
	case GuestspotStatusOpen, GuestspotStatusRequested, GuestspotStatusConfirmed,
		GuestspotStatusCompleted, GuestspotStatusCancelled:
		return true
	}
	return false
}

func (t ReviewTargetType) Valid() bool {
	return t == TargetTypeArtist || t == TargetTypeParlor
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleArtist, UserRoleParlorOwner, UserRoleAdmin:
		return true
	}
	return false
}
