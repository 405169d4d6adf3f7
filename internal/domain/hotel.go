package domain

import "time"

type Hotel struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required,max=50"`
	Postcode    string    `json:"postcode" validate:"required,max=8"`
	PhoneNumber string    `json:"phone_number" validate:"required,len=11,startswith=0,numeric"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
