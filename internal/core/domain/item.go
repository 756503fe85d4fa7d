package domain

import (
	"errors"
	"time"
)

// DateFormat is the accepted wire format for acquisition dates.
const DateFormat = "2006-01-02"

var ErrItemNotFound = errors.New("item not found")
var ErrPermissionDenied = errors.New("permission denied")

// Item is the core aggregate: a single inventory record owned by a user.
type Item struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Name            string    `json:"name" bson:"name"`
	Category        string    `json:"category" bson:"category"`
	Quantity        int       `json:"quantity" bson:"quantity"`
	EstimatedPrice  float64   `json:"estimated_price" bson:"estimated_price"`
	Location        string    `json:"location" bson:"location"`
	AcquisitionDate time.Time `json:"acquisition_date" bson:"acquisition_date"`
	OwnerID         string    `json:"owner_id" bson:"owner_id"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}
