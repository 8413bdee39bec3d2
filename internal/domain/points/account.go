package points

import "errors"

var ErrInsufficientPoints = errors.New("insufficient points")

// Account is a locked view of a user's balance used to decide a debit before any write happens.
type Account struct {
	userID  int64
	balance int64
}

func NewAccount(userID, balance int64) Account {
	return Account{userID: userID, balance: balance}
}

func (a Account) UserID() int64  { return a.userID }
func (a Account) Balance() int64 { return a.balance }

func (a Account) CanAfford(cost int64) bool {
	return cost <= a.balance
}

// Withdraw returns the delta for a debit of cost, refusing to take the balance below zero.
func (a Account) Withdraw(cost int64) (Delta, error) {
	if cost < 0 {
		return Delta{}, ErrInvalidAmount
	}
	if !a.CanAfford(cost) {
		return Delta{}, ErrInsufficientPoints
	}
	return Debit(cost), nil
}

func (a Account) Apply(d Delta) Account {
	return Account{userID: a.userID, balance: a.balance + d.value}
}
