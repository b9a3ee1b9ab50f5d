package platform

import (
	"context"
	"net/http"
	"net/url"

	"aivault-portal/internal/core/domain"
)

func (c *Client) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	return mutateJSON[domain.LoginResponse](ctx, c, http.MethodPost, "/auth/login", domain.LoginRequest{
		Email:    email,
		Password: password,
	})
}

func (c *Client) CreateUser(ctx context.Context, in domain.UserCreate) (*domain.User, error) {
	return mutateJSON[domain.User](ctx, c, http.MethodPost, "/users/", in)
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return getJSON[domain.User](ctx, c, "/users/by-email/"+url.PathEscape(email))
}
