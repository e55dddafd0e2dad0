package models

import "time"

// Account is a registered user. Digest is the password digest derived with
// the account's own Salt.
type Account struct {
	UserName  string
	Digest    string
	Salt      []byte
	CreatedAt time.Time
}
