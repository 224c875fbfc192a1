package model

import (
	"time"

	"github.com/google/uuid"
)

type FriendshipStatus = string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
)

type Friendship struct {
	ID         uuid.UUID
	UserID1    string
	UserID2    string
	Status     FriendshipStatus
	CreatedAt  time.Time
	AcceptedAt *time.Time
}

// FriendPair orders the pair so each friendship has a single row.
func FriendPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

func (f Friendship) Has(userID string) bool {
	return f.UserID1 == userID || f.UserID2 == userID
}
