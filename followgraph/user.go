package followgraph

import "strings"

// DefaultMaxFollowees is how many names a user can follow unless told otherwise.
const DefaultMaxFollowees = 10

// User is a named member of a Network with a bounded list of followee names.
// Followees are stored by name, not by reference, so a name may be followed
// before a user with that name exists.
type User struct {
	name         string
	followees    []string
	maxFollowees int
}

func NewUser(name string) *User {
	return NewUserWithCapacity(name, DefaultMaxFollowees)
}

func NewUserWithCapacity(name string, maxFollowees int) *User {
	if maxFollowees < 0 {
		maxFollowees = 0
	}
	return &User{
		name:         name,
		maxFollowees: maxFollowees,
	}
}

// NewSeededUser returns a user already following Foo, Bar and Baz.
func NewSeededUser(name string) *User {
	u := NewUser(name)
	for _, f := range seedNames {
		u.AddFollowee(f)
	}
	return u
}

func (u *User) Name() string {
	return u.name
}

// Followees returns the followed names in insertion order.
func (u *User) Followees() []string {
	out := make([]string, len(u.followees))
	copy(out, u.followees)
	return out
}

func (u *User) FolloweeCount() int {
	return len(u.followees)
}

func (u *User) MaxFollowees() int {
	return u.maxFollowees
}

func (u *User) Follows(name string) bool {
	if name == "" {
		return false
	}
	return u.indexOf(name) >= 0
}

func (u *User) indexOf(name string) int {
	for i, f := range u.followees {
		if f == name {
			return i
		}
	}
	return -1
}

// AddFollowee appends name to the followee list. It fails on an empty name,
// a name already followed, or a full list.
func (u *User) AddFollowee(name string) bool {
	if name == "" {
		return false
	}
	if u.Follows(name) || len(u.followees) >= u.maxFollowees {
		return false
	}
	u.followees = append(u.followees, name)
	return true
}

// RemoveFollowee drops name and shifts the following entries left.
func (u *User) RemoveFollowee(name string) bool {
	i := u.indexOf(name)
	if i < 0 || name == "" {
		return false
	}
	copy(u.followees[i:], u.followees[i+1:])
	u.followees[len(u.followees)-1] = ""
	u.followees = u.followees[:len(u.followees)-1]
	return true
}

// CountMutual returns how many names both users follow. The shorter list is
// scanned and checked against the longer one.
func (u *User) CountMutual(other *User) int {
	if other == nil {
		return 0
	}

	smaller, larger := u, other
	if len(other.followees) < len(u.followees) {
		smaller, larger = other, u
	}

	mutual := 0
	for _, f := range smaller.followees {
		if larger.Follows(f) {
			mutual++
		}
	}
	return mutual
}

// IsFriendOf reports whether u and other follow each other.
func (u *User) IsFriendOf(other *User) bool {
	if other == nil {
		return false
	}
	return u.Follows(other.name) && other.Follows(u.name)
}

func (u *User) String() string {
	var sb strings.Builder
	sb.WriteString(u.name)
	sb.WriteString(" -> ")
	for _, f := range u.followees {
		sb.WriteString(f)
		sb.WriteByte(' ')
	}
	return sb.String()
}
