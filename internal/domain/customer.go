package domain

import "time"

type Customer struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name" validate:"required,max=50"`
	LastName    string    `json:"last_name" validate:"required,max=50"`
	Email       string    `json:"email" validate:"required,email"`
	PhoneNumber string    `json:"phone_number" validate:"required,len=11,startswith=0,numeric"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
