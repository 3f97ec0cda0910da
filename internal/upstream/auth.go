package upstream

import (
	"context"
	"net/http"

	"docuport/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	OldPassword          string `json:"old_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type resetPasswordRequest struct {
	Email                string `json:"email"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
}

// Login exchanges credentials for an identity. The bearer token rides inside
// the identity record as access_token.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Identity, error) {
	env, err := c.do(ctx, http.MethodPost, "/login", nil, loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	identity := &session.Identity{}
	if err := env.Decode(identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// Logout invalidates the bearer token server-side. Local session teardown is
// the caller's job and happens even when this call fails.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/logout", nil, nil)
	return err
}

// Profile fetches a fresh copy of the authenticated admin. The session
// identity is replaced wholesale with the result.
func (c *Client) Profile(ctx context.Context) (*session.Identity, error) {
	env, err := c.do(ctx, http.MethodGet, "/admin/profile", nil, nil)
	if err != nil {
		return nil, err
	}
	identity := &session.Identity{}
	if err := env.Decode(identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, password, confirmation string) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/change-password", nil, changePasswordRequest{
		OldPassword:          oldPassword,
		Password:             password,
		PasswordConfirmation: confirmation,
	})
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/forgot-password", nil, resetPasswordRequest{Email: email})
}

func (c *Client) ResendPassword(ctx context.Context, email string) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/resend-password", nil, resetPasswordRequest{Email: email})
}

// VerifyPassword completes the email reset flow with the new password.
func (c *Client) VerifyPassword(ctx context.Context, email, password, confirmation string) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/verify-password", nil, resetPasswordRequest{
		Email:                email,
		Password:             password,
		PasswordConfirmation: confirmation,
	})
}
