package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// TokenSetter is the write side of a token store.
type TokenSetter interface {
	Set(token string) error
}

// AuthClient handles login against the board service.
type AuthClient struct {
	c     *Client
	store TokenSetter
}

// NewAuthClient creates an auth client. store may be nil when the caller
// wants the token without persisting it.
func NewAuthClient(c *Client, store TokenSetter) *AuthClient {
	return &AuthClient{c: c, store: store}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token and stores it on success.
// The call itself is unauthenticated.
func (a *AuthClient) Login(ctx context.Context, email, password string) (string, error) {
	raw, err := a.c.Request(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, false)
	if err != nil {
		return "", err
	}

	var res loginResponse
	if raw != nil {
		if err := json.Unmarshal(raw, &res); err != nil {
			return "", err
		}
	}
	if res.Token == "" {
		return "", errors.New("login response carried no token")
	}

	if a.store != nil {
		if err := a.store.Set(res.Token); err != nil {
			return "", err
		}
	}
	return res.Token, nil
}
