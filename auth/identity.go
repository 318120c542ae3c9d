package auth

import (
	"strconv"
	"strings"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller resolved from a verified token.
type Identity struct {
	ID    uint
	Email string
	Role  string
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

func (i Identity) HasRole(roles ...string) bool {
	for _, role := range roles {
		if i.Role == role {
			return true
		}
	}
	return false
}

// Each group is tried in order; the first claim that parses as an id wins.
var identityClaimOrder = [][]string{
	{ClaimName, claimShortName, claimURIName},
	{ClaimNameID, claimURINameID},
	{ClaimSubject},
}

// IdentityFromClaims resolves the numeric user id and role from token claims.
func IdentityFromClaims(claims jwt.MapClaims) (Identity, error) {
	for _, group := range identityClaimOrder {
		for _, name := range group {
			if id, ok := parseID(claims[name]); ok {
				return Identity{
					ID:    id,
					Email: firstString(claims, ClaimEmail),
					Role:  firstString(claims, ClaimRole, claimURIRole),
				}, nil
			}
		}
	}
	return Identity{}, utils.ErrIdentityNotFound
}

func parseID(value interface{}) (uint, bool) {
	switch v := value.(type) {
	case string:
		id, err := strconv.ParseUint(strings.TrimSpace(v), 10, 0)
		if err != nil || id == 0 {
			return 0, false
		}
		return uint(id), true
	case float64:
		if v <= 0 || v != float64(uint(v)) {
			return 0, false
		}
		return uint(v), true
	}
	return 0, false
}

func firstString(claims jwt.MapClaims, names ...string) string {
	for _, name := range names {
		if s, ok := claims[name].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
