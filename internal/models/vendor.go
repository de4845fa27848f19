package models

import "time"

const (
	VendorActive   = "active"
	VendorInactive = "inactive"
)

type Vendor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VendorRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}
