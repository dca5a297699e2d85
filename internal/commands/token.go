package commands

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"workforce/backend/internal/auth"
)

const (
	accessTokenTTL  = 8 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenData is the identity a token pair is minted for.
type TokenData struct {
	ID   int
	Role string
}

// GenToken mints an access/refresh token pair for the given identity.
func GenToken(data TokenData, secret string) (accessToken string, refreshToken string, err error) {
	now := time.Now()

	accessClaims := auth.Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(accessTokenTTL).Unix(),
		},
		UserId: data.ID,
		Role:   data.Role,
		Type:   "access",
	}
	accessToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshClaims := auth.Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(RefreshTokenTTL).Unix(),
		},
		UserId: data.ID,
		Role:   data.Role,
		Type:   "refresh",
	}
	refreshToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return accessToken, refreshToken, nil
}

// VerifyTokens checks a refresh token and its matching (possibly expired)
// access token, returning both sets of claims. The access token's signature
// must still verify; only its expiry is forgiven.
func VerifyTokens(accessToken, refreshToken, secret string) (auth.Claims, auth.Claims, error) {
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}

	var refreshClaims auth.Claims
	token, err := jwt.ParseWithClaims(refreshToken, &refreshClaims, keyFunc)
	if err != nil || !token.Valid {
		return auth.Claims{}, auth.Claims{}, errors.New("invalid refresh token")
	}
	if refreshClaims.Type != "refresh" {
		return auth.Claims{}, auth.Claims{}, errors.New("token is not a refresh token")
	}

	var accessClaims auth.Claims
	_, err = jwt.ParseWithClaims(accessToken, &accessClaims, keyFunc)
	if err != nil {
		ve, ok := err.(*jwt.ValidationError)
		if !ok || ve.Errors&^jwt.ValidationErrorExpired != 0 {
			return auth.Claims{}, auth.Claims{}, errors.New("invalid access token")
		}
	}
	if accessClaims.UserId != refreshClaims.UserId {
		return auth.Claims{}, auth.Claims{}, errors.New("token pair mismatch")
	}

	return accessClaims, refreshClaims, nil
}
