package backend

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// tokenSigner mints and verifies the mock session tokens. The token is a real
// HS256 JWT so the delivery layer can verify bearer tokens the same way a
// production client would.
type tokenSigner struct {
	secret []byte
	ttl    time.Duration
	clock  func() time.Time
}

func newTokenSigner(secret string, ttl time.Duration, clock func() time.Time) *tokenSigner {
	if secret == "" {
		secret = "shamba-mock-secret"
	}

	return &tokenSigner{secret: []byte(secret), ttl: ttl, clock: clock}
}

type sessionClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Mint issues a signed token for the given user.
func (s *tokenSigner) Mint(userID, email string) (string, error) {
	now := s.clock()
	claims := sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return token, nil
}

// Verify parses the token and returns the user ID it was issued for.
func (s *tokenSigner) Verify(tokenString string) (string, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse session token")
	}

	return claims.Subject, nil
}

// VerifyToken implements service.TokenVerifier.
func (a *Adapter) VerifyToken(token string) (string, error) {
	return a.signer.Verify(token)
}
