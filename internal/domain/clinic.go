package domain

import "time"

// ClinicProfile is the single-row clinic metadata edited from the
// settings screen.
type ClinicProfile struct {
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int32     `json:"-"`
}
