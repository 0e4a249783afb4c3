package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog entry. Reads are public; writes require the admin role.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Imagen      string    `json:"imagen,omitempty" bson:"imagen,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}
