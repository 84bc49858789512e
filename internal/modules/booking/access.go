package booking

import "tablebook/internal/domain"

// authorizeOwner permits a mutation only for the user that created the
// booking. Staff visibility goes through the admin listing and never
// bypasses this check for writes.
func authorizeOwner(userID int64, b *domain.Booking) error {
	if b.UserID != userID {
		return ErrForbidden
	}
	return nil
}
