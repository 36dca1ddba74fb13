package jellyfin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Users lists the users visible to the authenticated user, filtered on the
// hidden and disabled flags.
func (c *Client) Users(ctx context.Context, isHidden, isDisabled bool) ([]User, error) {
	query := url.Values{}
	query.Set("isHidden", strconv.FormatBool(isHidden))
	query.Set("isDisabled", strconv.FormatBool(isDisabled))

	var users []User
	if err := c.doJSON(ctx, http.MethodGet, "/Users", query, nil, sessionAuth, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserByID fetches a single user.
func (c *Client) UserByID(ctx context.Context, id string) (User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, userPath(id, ""), nil, nil, sessionAuth, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// CurrentUser fetches the user bound to the current session token.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/Users/Me", nil, nil, sessionAuth, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// PublicUsers lists the users the server exposes on its login screen. The
// request is anonymous and works without authentication.
func (c *Client) PublicUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.doJSON(ctx, http.MethodGet, "/Users/Public", nil, nil, anonymousAuth, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a new user with the given name and password.
func (c *Client) CreateUser(ctx context.Context, username, password string) (User, error) {
	body := map[string]string{
		"Name":     username,
		"Password": password,
	}
	var user User
	if err := c.doJSON(ctx, http.MethodPost, "/Users/New", nil, body, sessionAuth, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, userPath(id, ""), nil, nil, sessionAuth, nil)
}

// UpdateUser replaces a user's record.
func (c *Client) UpdateUser(ctx context.Context, id string, user User) error {
	return c.doJSON(ctx, http.MethodPost, userPath(id, ""), nil, user, sessionAuth, nil)
}

// UpdateUserConfiguration replaces a user's configuration.
func (c *Client) UpdateUserConfiguration(ctx context.Context, id string, conf UserConfiguration) error {
	return c.doJSON(ctx, http.MethodPost, userPath(id, "Configuration"), nil, conf, sessionAuth, nil)
}

// UpdateUserPassword sets a new password for a user.
func (c *Client) UpdateUserPassword(ctx context.Context, id, newPassword string) error {
	body := map[string]string{"NewPw": newPassword}
	return c.doJSON(ctx, http.MethodPost, userPath(id, "Password"), nil, body, sessionAuth, nil)
}

// UpdateUserPolicy replaces a user's policy.
func (c *Client) UpdateUserPolicy(ctx context.Context, id string, policy UserPolicy) error {
	return c.doJSON(ctx, http.MethodPost, userPath(id, "Policy"), nil, policy, sessionAuth, nil)
}

// ForgotPassword starts the password reset flow for a username. Anonymous.
func (c *Client) ForgotPassword(ctx context.Context, username string) error {
	body := map[string]string{"EnteredUsername": username}
	return c.doJSON(ctx, http.MethodPost, "/Users/ForgotPassword", nil, body, anonymousAuth, nil)
}

// RedeemForgotPasswordPin redeems a password reset PIN. Anonymous.
func (c *Client) RedeemForgotPasswordPin(ctx context.Context, pin string) error {
	body := map[string]string{"Pin": pin}
	return c.doJSON(ctx, http.MethodPost, "/Users/ForgotPassword/Pin", nil, body, anonymousAuth, nil)
}

func userPath(id, suffix string) string {
	path := fmt.Sprintf("/Users/%s", url.PathEscape(id))
	if suffix != "" {
		path += "/" + suffix
	}
	return path
}
