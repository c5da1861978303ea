package domain

import (
	"strings"
	"time"
)

type Account struct {
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Holdings     []Holding
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Name joins the profile names the way clients display them; either part may
// be empty.
func (a *Account) Name() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

type Holding struct {
	Symbol string
	Units  float64
}
