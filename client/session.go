package client

import (
	"context"

	"github.com/google/uuid"
)

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Session returns the current session, or nil when signed out.
func (c *Client) Session() *Session {
	return c.session
}

// OnSessionChange registers a callback fired on sign-in and sign-out. This
// is the only session subscription point; nothing else watches auth state.
// The returned function unsubscribes.
func (c *Client) OnSessionChange(fn func(*Session)) func() {
	c.subs = append(c.subs, fn)
	index := len(c.subs) - 1
	return func() {
		c.subs[index] = nil
	}
}

func (c *Client) setSession(s *Session) {
	c.session = s
	for _, fn := range c.subs {
		if fn != nil {
			fn(s)
		}
	}
}

type credentials struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}

// SignUp registers a new account and starts a session.
func (c *Client) SignUp(ctx context.Context, email, name, password string) (*Session, error) {
	var session Session
	err := c.do(ctx, "POST", "/auth/register", credentials{Email: email, Name: name, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	c.setSession(&session)
	return &session, nil
}

// SignIn starts a session with existing credentials.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	err := c.do(ctx, "POST", "/auth/login", credentials{Email: email, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	c.setSession(&session)
	return &session, nil
}

// SignOut ends the session. The local session is dropped even if the server
// call fails; the token expires on its own.
func (c *Client) SignOut(ctx context.Context) error {
	err := c.do(ctx, "POST", "/auth/logout", nil, nil)
	c.setSession(nil)
	return err
}
