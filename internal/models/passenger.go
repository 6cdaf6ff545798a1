package models

import "time"

// Entity ของตาราง public.passengers
type Passenger struct {
	ID          string     `json:"id" db:"id"`
	FirstName   *string    `json:"first_name,omitempty" db:"first_name"`
	LastName    *string    `json:"last_name,omitempty" db:"last_name"`
	Email       *string    `json:"email,omitempty" db:"email"`
	Mobile      *string    `json:"mobile,omitempty" db:"mobile"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	AadharCard  *string    `json:"aadhar_card,omitempty" db:"aadhar_card"`
	MiniBio     *string    `json:"mini_bio,omitempty" db:"mini_bio"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
