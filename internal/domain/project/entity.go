package project

import (
	"time"

	"github.com/shopspring/decimal"
)

type Project struct {
	ID     string
	Name   string
	Client string
	Status Status
	// Progress is a completion percentage in [0, 100].
	Progress int
	Budget   decimal.Decimal
	// MarginTarget is the profit margin this project is expected to
	// hit, as a percentage.
	MarginTarget float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusHold     Status = "hold"
	StatusFinished Status = "finished"
)
