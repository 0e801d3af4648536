package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry that order line items reference.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	CreatedAt   time.Time
}
