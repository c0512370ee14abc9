package auth

import "inklink_backend/internal/models"

func IsAdmin(claims *Claims) bool {
	return claims != nil && claims.Role == models.UserRoleAdmin
}

// CanManageParlor reports whether the requester owns the parlor or is an
// admin. Ownership checks on guestspots go through the owning parlor.
func CanManageParlor(userID string, role models.UserRole, parlor *models.Parlor) bool {
	if role == models.UserRoleAdmin {
		return true
	}
	return parlor != nil && parlor.OwnerID == userID
}

// CanManageArtist reports whether the requester is the artist's user or an
// admin.
func CanManageArtist(userID string, role models.UserRole, artist *models.Artist) bool {
	if role == models.UserRoleAdmin {
		return true
	}
	return artist != nil && artist.UserID == userID
}
