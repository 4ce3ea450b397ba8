package service

import (
	"encoding/base64"
	"errors"
	"strings"
)

// AuthErrorKind tells apart why a request failed authentication.
// Clients never see the difference; it is kept for logs and tests.
type AuthErrorKind int

const (
	AuthMissing AuthErrorKind = iota + 1
	AuthMalformed
	AuthInvalid
)

func (k AuthErrorKind) String() string {
	switch k {
	case AuthMissing:
		return "missing"
	case AuthMalformed:
		return "malformed"
	case AuthInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// AuthError is returned by ExtractCredentials and AuthService.Authenticate.
type AuthError struct {
	Kind   AuthErrorKind
	Reason string
}

func (e *AuthError) Error() string {
	if e.Reason == "" {
		return "auth " + e.Kind.String()
	}
	return "auth " + e.Kind.String() + ": " + e.Reason
}

// Is matches any *AuthError of the same kind, so the sentinels below work with errors.Is.
func (e *AuthError) Is(target error) bool {
	var t *AuthError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrMissingCredentials   = &AuthError{Kind: AuthMissing}
	ErrMalformedCredentials = &AuthError{Kind: AuthMalformed}
	ErrInvalidCredentials   = &AuthError{Kind: AuthInvalid}
)

const basicScheme = "Basic"

// Credentials is a claimed (username, password) pair taken from the request.
type Credentials struct {
	Username string
	Password string
}

// ExtractCredentials parses an Authorization header value using the Basic scheme.
// The password is everything after the first colon and may itself contain colons.
func ExtractCredentials(header string) (Credentials, error) {
	if header == "" {
		return Credentials{}, ErrMissingCredentials
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, basicScheme) {
		return Credentials{}, &AuthError{Kind: AuthMalformed, Reason: "unsupported scheme"}
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return Credentials{}, &AuthError{Kind: AuthMalformed, Reason: "empty token"}
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Credentials{}, &AuthError{Kind: AuthMalformed, Reason: "invalid base64"}
	}

	username, password, ok := strings.Cut(string(raw), ":")
	if !ok {
		return Credentials{}, &AuthError{Kind: AuthMalformed, Reason: "missing colon"}
	}
	return Credentials{Username: username, Password: password}, nil
}
