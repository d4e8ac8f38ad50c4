package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleDoctor  Role = "Doctor"
	RolePatient Role = "Patient"
)

// Gender enum
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// User represents any identity in the system. Patients, doctors and
// admins share the table and are discriminated by Role; doctor-only
// fields (department, avatar) stay empty for the other roles.
type User struct {
	BaseModel
	FirstName        string     `gorm:"size:100;not null" json:"firstName" validate:"required,min=3"`
	LastName         string     `gorm:"size:100;not null" json:"lastName" validate:"required,min=3"`
	Email            string     `gorm:"uniqueIndex;size:255;not null" json:"email" validate:"required,email"`
	Phone            string     `gorm:"size:20;not null" json:"phone" validate:"required,len=10,numeric"`
	Password         string     `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	DateOfBirth      *time.Time `json:"dob,omitempty"`
	Gender           Gender     `gorm:"size:10" json:"gender" validate:"required,oneof=Male Female"`
	Role             Role       `gorm:"size:20;index" json:"role"`
	DoctorDepartment string     `gorm:"size:100" json:"doctorDepartment,omitempty"`
	DocAvatarURL     string     `gorm:"size:512" json:"docAvatar,omitempty"` // hosted externally, URL only

	// Relations (not always preloaded)
	DoctorAppointments  []Appointment `gorm:"foreignKey:DoctorID" json:"-"`
	PatientAppointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID               string     `json:"id"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	DateOfBirth      *time.Time `json:"dob,omitempty"`
	Gender           Gender     `json:"gender"`
	Role             Role       `json:"role"`
	DoctorDepartment string     `json:"doctorDepartment,omitempty"`
	DocAvatarURL     string     `json:"docAvatar,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Phone:            u.Phone,
		DateOfBirth:      u.DateOfBirth,
		Gender:           u.Gender,
		Role:             u.Role,
		DoctorDepartment: u.DoctorDepartment,
		DocAvatarURL:     u.DocAvatarURL,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
