package session

// TokenGetter is the read side of a token store.
type TokenGetter interface {
	Get() (string, bool)
}

// Decision is the outcome of a guard check, evaluated once per view entry.
// Views show a placeholder while the check resolves so protected content
// never flashes before a redirect.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// RequireAuth gates an authenticated view: without a token the user is sent
// to the login destination.
func RequireAuth(tokens TokenGetter, redirectTo string) Decision {
	if redirectTo == "" {
		redirectTo = "/login"
	}
	if _, ok := tokens.Get(); !ok {
		return Decision{Allowed: false, RedirectTo: redirectTo}
	}
	return Decision{Allowed: true}
}

// GuestOnly gates a guest view: with a token present the user is sent to
// the authenticated landing destination.
func GuestOnly(tokens TokenGetter, redirectTo string) Decision {
	if redirectTo == "" {
		redirectTo = "/posts"
	}
	if _, ok := tokens.Get(); ok {
		return Decision{Allowed: false, RedirectTo: redirectTo}
	}
	return Decision{Allowed: true}
}
