package utils

import (
	"fmt"
	"math/rand"

	"github.com/shifa-dev/clinic-desk/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"Ahmed", "Mohammed", "Omar", "Youssef", "Khaled", "Hassan", "Karim", "Tarek",
	"Fatima", "Aisha", "Mariam", "Layla", "Nour", "Salma", "Huda", "Rania",
}

var commonFamilyNames = []string{
	"Hassan", "Ibrahim", "Mahmoud", "Mostafa", "Saleh", "Farouk", "Amin", "Nasser",
	"Khalil", "Mansour", "Aziz", "Hamdan", "Sultan", "Rashid", "Obeid", "Zahran",
}

func GenerateRandomFullName() string {
	return commonFirstNames[rand.Intn(len(commonFirstNames))] + " " + commonFamilyNames[rand.Intn(len(commonFamilyNames))]
}

var digits = "0123456789"

func GenerateRandomPhone() string {
	phone := "05"
	for i := 0; i < 8; i++ {
		phone += string(digits[rand.Intn(len(digits))])
	}
	return phone
}

func GenerateRandomPatient() *domain.Patient {
	fullName := GenerateRandomFullName()
	gender := domain.GenderMale
	if rand.Intn(2) == 1 {
		gender = domain.GenderFemale
	}

	return &domain.Patient{
		FullName: fullName,
		Phone:    GenerateRandomPhone(),
		Gender:   gender,
	}
}

var staffRoles = []domain.Role{
	domain.RoleReceptionist,
	domain.RoleDoctor,
	domain.RoleAdmin,
}

func GenerateRandomRole() domain.Role {
	return staffRoles[rand.Intn(len(staffRoles))]
}

func GenerateRandomUser(password string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	username := GenerateRandomID(6, 2)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@example.org",
		Role:         GenerateRandomRole(),
	}, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = rune("abcdefghijklmnopqrstuvwxyz"[rand.Intn(26)])
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

// DefaultWorkingShifts is the schedule the seeder installs: mornings and
// evenings Sunday through Thursday, morning only on Saturday, closed on
// Friday.
func DefaultWorkingShifts() []domain.WorkingShift {
	weekdays := []string{"sunday", "monday", "tuesday", "wednesday", "thursday"}

	shifts := make([]domain.WorkingShift, 0, len(weekdays)*2+1)
	for _, day := range weekdays {
		shifts = append(shifts,
			domain.WorkingShift{Weekday: day, StartTime: "09:00", EndTime: "13:00"},
			domain.WorkingShift{Weekday: day, StartTime: "16:00", EndTime: "21:00"},
		)
	}
	shifts = append(shifts, domain.WorkingShift{Weekday: "saturday", StartTime: "09:00", EndTime: "14:00"})

	return shifts
}
