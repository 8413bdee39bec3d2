package points

import (
	"errors"
	"math"
)

var (
	ErrInvalidAmount = errors.New("points delta must be a finite whole number")
	ErrInvalidUserID = errors.New("user id must be positive")
)

// JSON numbers decode as float64; anything outside this range cannot round-trip through int64.
const maxDeltaMagnitude = 1 << 53

// Delta is a signed change to a points balance.
type Delta struct {
	value int64
}

func NewDelta(raw float64) (Delta, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return Delta{}, ErrInvalidAmount
	}
	if raw != math.Trunc(raw) {
		return Delta{}, ErrInvalidAmount
	}
	if math.Abs(raw) > maxDeltaMagnitude {
		return Delta{}, ErrInvalidAmount
	}
	return Delta{value: int64(raw)}, nil
}

func Credit(amount int64) Delta {
	return Delta{value: amount}
}

func Debit(amount int64) Delta {
	return Delta{value: -amount}
}

func (d Delta) Value() int64 {
	return d.value
}

func (d Delta) IsZero() bool {
	return d.value == 0
}

func ValidateUserID(userID int64) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}
	return nil
}
