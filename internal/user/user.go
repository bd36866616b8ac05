// Package user defines the people who operate the catering system and the
// capability roles they carry. Roles are a set, not a hierarchy: the same
// user may be both a cook and a chef.
package user

import (
	"errors"
	"sort"
)

// Role is a capability granted to a user.
type Role string

const (
	// RoleCook marks a user who can be assigned kitchen tasks.
	RoleCook Role = "cook"
	// RoleChef marks a user who can author menus and summary sheets.
	RoleChef Role = "chef"
	// RoleOrganizer marks a user who plans events.
	RoleOrganizer Role = "organizer"
	// RoleServicePersonnel marks a user who works the service floor.
	RoleServicePersonnel Role = "service"
)

// ErrNotChef indicates the current user lacks the chef role required by an
// operation.
var ErrNotChef = errors.New("current user is not a chef")

// ErrNoCurrentUser indicates no user is logged in.
var ErrNoCurrentUser = errors.New("no current user")

// User is a person known to the system.
type User struct {
	id       int64
	username string
	roles    map[Role]struct{}
}

// New creates an unsaved user with the given username and roles.
func New(username string, roles ...Role) *User {
	u := &User{username: username, roles: make(map[Role]struct{})}
	for _, r := range roles {
		u.roles[r] = struct{}{}
	}
	return u
}

// ID returns the storage identity, 0 for an unsaved user.
func (u *User) ID() int64 { return u.id }

// SetID assigns the storage identity.
func (u *User) SetID(id int64) { u.id = id }

// Username returns the login name.
func (u *User) Username() string { return u.username }

// AddRole grants a role. It reports whether the role was newly added.
func (u *User) AddRole(r Role) bool {
	if _, ok := u.roles[r]; ok {
		return false
	}
	u.roles[r] = struct{}{}
	return true
}

// RemoveRole revokes a role. It reports whether the role was present.
func (u *User) RemoveRole(r Role) bool {
	if _, ok := u.roles[r]; !ok {
		return false
	}
	delete(u.roles, r)
	return true
}

// HasRole reports whether the user carries the role.
func (u *User) HasRole(r Role) bool {
	_, ok := u.roles[r]
	return ok
}

// IsChef reports whether the user can author menus and summary sheets.
func (u *User) IsChef() bool { return u.HasRole(RoleChef) }

// IsCook reports whether the user can be assigned kitchen tasks.
func (u *User) IsCook() bool { return u.HasRole(RoleCook) }

// Roles returns the user's roles in a stable order.
func (u *User) Roles() []Role {
	roles := make([]Role, 0, len(u.roles))
	for r := range u.roles {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Equal reports whether two users refer to the same person. Saved users
// compare by identity; unsaved users compare by username.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	if u.id > 0 && other.id > 0 {
		return u.id == other.id
	}
	return u.username == other.username
}
