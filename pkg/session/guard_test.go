package session

import "testing"

type staticTokens struct {
	token string
}

func (s staticTokens) Get() (string, bool) {
	return s.token, s.token != ""
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name             string
		token            string
		redirectTo       string
		expectedAllowed  bool
		expectedRedirect string
	}{
		{
			name:            "token present",
			token:           "abc",
			expectedAllowed: true,
		},
		{
			name:             "no token redirects to login",
			token:            "",
			expectedAllowed:  false,
			expectedRedirect: "/login",
		},
		{
			name:             "custom redirect",
			token:            "",
			redirectTo:       "/signin",
			expectedAllowed:  false,
			expectedRedirect: "/signin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := RequireAuth(staticTokens{token: tt.token}, tt.redirectTo)
			if d.Allowed != tt.expectedAllowed {
				t.Errorf("Allowed = %v, want %v", d.Allowed, tt.expectedAllowed)
			}
			if d.RedirectTo != tt.expectedRedirect {
				t.Errorf("RedirectTo = %q, want %q", d.RedirectTo, tt.expectedRedirect)
			}
		})
	}
}

func TestGuestOnly(t *testing.T) {
	tests := []struct {
		name             string
		token            string
		redirectTo       string
		expectedAllowed  bool
		expectedRedirect string
	}{
		{
			name:            "guest allowed",
			token:           "",
			expectedAllowed: true,
		},
		{
			name:             "signed-in user sent to posts",
			token:            "abc",
			expectedAllowed:  false,
			expectedRedirect: "/posts",
		},
		{
			name:             "custom redirect",
			token:            "abc",
			redirectTo:       "/home",
			expectedAllowed:  false,
			expectedRedirect: "/home",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := GuestOnly(staticTokens{token: tt.token}, tt.redirectTo)
			if d.Allowed != tt.expectedAllowed {
				t.Errorf("Allowed = %v, want %v", d.Allowed, tt.expectedAllowed)
			}
			if d.RedirectTo != tt.expectedRedirect {
				t.Errorf("RedirectTo = %q, want %q", d.RedirectTo, tt.expectedRedirect)
			}
		})
	}
}
