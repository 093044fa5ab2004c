package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialExpiry returns the exp claim of the current credential. The
// token is not verified; the result is informational and never affects
// whether the session counts as logged in.
func (s *Store) CredentialExpiry() (time.Time, bool) {
	return credentialExpiry(s.Snapshot().Credential)
}

func credentialExpiry(credential string) (time.Time, bool) {
	if credential == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
