package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BruksfildServices01/barber-frontend/internal/models"
)

var ErrMalformedLogin = errors.New("auth: login response without token")

type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

func (a *AuthAPI) Client() *Client {
	return a.client
}

// LoginResult is the auth service answer to login and register.
type LoginResult struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

func (a *AuthAPI) Login(ctx context.Context, body []byte, requestID string) (*Response, error) {
	return a.client.Do(ctx, Request{Method: http.MethodPost, Path: "/auth/login", Body: body, RequestID: requestID})
}

func (a *AuthAPI) Register(ctx context.Context, body []byte, requestID string) (*Response, error) {
	return a.client.Do(ctx, Request{Method: http.MethodPost, Path: "/auth/register", Body: body, RequestID: requestID})
}

func ParseLoginResult(body []byte) (*LoginResult, error) {
	var res LoginResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, err
	}
	if res.AccessToken == "" {
		return nil, ErrMalformedLogin
	}
	return &res, nil
}

// Verify asks the auth service who owns token. Any non-2xx answer is a rejection.
func (a *AuthAPI) Verify(ctx context.Context, token string) (*models.User, error) {
	body, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Fetch(ctx, Request{Method: http.MethodPost, Path: "/auth/verify", Body: body}, nil)
	if err != nil {
		return nil, err
	}

	// the verify answer is either the user itself or wrapped in "user"
	var wrapped struct {
		User *models.User `json:"user"`
	}
	if err := json.Unmarshal(resp.Body, &wrapped); err == nil && wrapped.User != nil {
		return wrapped.User, nil
	}

	var user models.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, &Error{Service: a.client.service, Status: resp.Status, Body: resp.Body, Err: err}
	}
	return &user, nil
}
