package auth

import "github.com/Kariqs/storefront-api/utils"

// CanAccess applies the self-or-admin policy to a resource owned by ownerID.
func CanAccess(caller Identity, ownerID uint) bool {
	return caller.ID == ownerID || caller.IsAdmin()
}

func Authorize(caller Identity, ownerID uint) error {
	if !CanAccess(caller, ownerID) {
		return utils.ErrForbidden
	}
	return nil
}
