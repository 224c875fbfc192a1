package model

import (
	"time"

	"github.com/google/uuid"
)

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionSuper Direction = "super"
)

func (d Direction) Valid() bool {
	switch d {
	case DirectionLeft, DirectionRight, DirectionSuper:
		return true
	}
	return false
}

// IsAccept treats right and super as the same vote.
func (d Direction) IsAccept() bool {
	return d == DirectionRight || d == DirectionSuper
}

type Swipe struct {
	SessionID uuid.UUID
	UserID    string
	MovieID   MovieID
	Direction Direction
	SwipedAt  time.Time
}

type SwipeResult struct {
	Matched bool
	MovieID *MovieID
}
