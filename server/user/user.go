// Package user holds the user model of the poll backend.
//
// Users are created once and never mutated or deleted. A user is keyed by
// its username, so the record ID and the username are always identical.
package user

import "encoding/json"

// User stores all needed information for a user
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// NewUser creates a new user keyed by the given username.
func NewUser(username string) *User {
	return &User{ID: username, Username: username}
}

// RecordID returns the key the user is stored under.
func (u *User) RecordID() string {
	return u.ID
}

// Copy deep copies a user
func (u *User) Copy() *User {
	u2 := new(User)
	*u2 = *u
	return u2
}

// EncodeToByte returns a user as a byte array
func (u *User) EncodeToByte() []byte {
	b, _ := json.Marshal(u)
	return b
}

// DecodeUserFromByte tries to create a user from a byte array
func DecodeUserFromByte(b []byte) *User {
	u := User{}
	err := json.Unmarshal(b, &u)
	if err != nil {
		return nil
	}
	return &u
}
