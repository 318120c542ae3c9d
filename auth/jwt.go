package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenLifetime = 7 * 24 * time.Hour
	clockSkew     = 5 * time.Minute
)

// Claim names as written on the wire. The numeric user id is repeated in
// sub, nameid and unique_name; unique_name is the primary identity slot.
const (
	ClaimName       = "unique_name"
	ClaimNameID     = "nameid"
	ClaimEmail      = "email"
	ClaimRole       = "role"
	ClaimSubject    = "sub"
	claimShortName  = "name"
	claimURIName    = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	claimURINameID  = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	claimURIRole    = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	signingAlgoName = "HS256"
)

type tokenClaims struct {
	Name   string `json:"unique_name"`
	NameID string `json:"nameid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 identity tokens. Issuer doubles as audience.
type TokenService struct {
	key    []byte
	issuer string
	now    func() time.Time
}

func NewTokenService(key, issuer string) (*TokenService, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: JWT key is not set", utils.ErrConfiguration)
	}
	if issuer == "" {
		return nil, fmt.Errorf("%w: JWT issuer is not set", utils.ErrConfiguration)
	}
	return &TokenService{key: []byte(key), issuer: issuer, now: time.Now}, nil
}

func (s *TokenService) Issue(user models.User) (string, error) {
	id := strconv.FormatUint(uint64(user.ID), 10)
	now := s.now()

	claims := tokenClaims{
		Name:   id,
		NameID: id,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.issuer},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Verify checks signature, issuer, audience and expiry, returning the raw claims.
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.key, nil
	},
		jwt.WithValidMethods([]string{signingAlgoName}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", utils.ErrUnauthenticated, err)
	}
	return claims, nil
}

// Authenticate verifies the token and resolves the caller identity from it.
func (s *TokenService) Authenticate(tokenString string) (Identity, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return Identity{}, err
	}
	return IdentityFromClaims(claims)
}
