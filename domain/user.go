package domain

import "time"

// User is an account as stored by the user repository.
type User struct {
	ID           UserID
	Email        string
	Username     string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username}
}
