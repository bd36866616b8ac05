package user

import "context"

// Session resolves the user on whose behalf domain operations run. Login
// mechanics live outside the domain; managers only ever ask who the current
// user is.
type Session interface {
	CurrentUser(ctx context.Context) (*User, error)
}

// SingleSession is an in-process Session holding one current user at a time.
// It backs CLI and test wiring where a full identity provider is overkill.
type SingleSession struct {
	current *User
}

// NewSingleSession creates a session with no user logged in.
func NewSingleSession() *SingleSession {
	return &SingleSession{}
}

// SetCurrentUser logs the given user in, replacing any previous user.
// Passing nil logs out.
func (s *SingleSession) SetCurrentUser(u *User) {
	s.current = u
}

// CurrentUser returns the logged-in user or ErrNoCurrentUser.
func (s *SingleSession) CurrentUser(ctx context.Context) (*User, error) {
	if s.current == nil {
		return nil, ErrNoCurrentUser
	}
	return s.current, nil
}
