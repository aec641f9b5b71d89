package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Patient struct {
	ID        int64      `json:"id"`
	FullName  string     `json:"fullName"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Gender    Gender     `json:"gender"`
	BirthDate *time.Time `json:"birthDate"`
	Address   string     `json:"address"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"createdAt"`
	Version   int32      `json:"-"`
}
