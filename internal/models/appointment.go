package models

import (
	"time"
)

// AppointmentStatus represents the triage status of an appointment
type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "Pending"
	StatusAccepted AppointmentStatus = "Accepted"
	StatusRejected AppointmentStatus = "Rejected"
)

// DoctorSnapshot is the denormalized copy of the referenced doctor's name
// stored inside an appointment so lists can render without a join. It is
// recomputed from the canonical doctor record on every successful write
// that reassigns the doctor.
type DoctorSnapshot struct {
	FirstName string `gorm:"column:doctor_first_name;size:100" json:"firstName" validate:"required"`
	LastName  string `gorm:"column:doctor_last_name;size:100" json:"lastName" validate:"required"`
}

// Appointment represents a patient's request to see a doctor on a date,
// carrying the patient's contact details as entered on the booking form.
type Appointment struct {
	BaseModel
	FirstName       string            `gorm:"size:100;not null" json:"firstName" validate:"required,min=3"`
	LastName        string            `gorm:"size:100;not null" json:"lastName" validate:"required,min=3"`
	Email           string            `gorm:"size:255;not null" json:"email" validate:"required,email"`
	Phone           string            `gorm:"size:20;not null" json:"phone" validate:"required,len=10,numeric"`
	DateOfBirth     time.Time         `gorm:"not null" json:"dob" validate:"required"`
	Gender          Gender            `gorm:"size:10;not null" json:"gender" validate:"required,oneof=Male Female"`
	AppointmentDate time.Time         `gorm:"not null" json:"appointment_date" validate:"required"`
	Department      string            `gorm:"size:100;not null" json:"department" validate:"required"`
	Doctor          DoctorSnapshot    `gorm:"embedded" json:"doctor"`
	HasVisited      bool              `gorm:"default:false" json:"hasVisited"`
	Address         string            `gorm:"size:255;not null" json:"address" validate:"required"`
	DoctorID        string            `gorm:"size:36;index;not null" json:"doctorId" validate:"required"`
	PatientID       string            `gorm:"size:36;index;not null" json:"patientId" validate:"required"`
	Status          AppointmentStatus `gorm:"size:20;default:'Pending'" json:"status" validate:"required,oneof=Pending Accepted Rejected"`
	Edited          bool              `gorm:"default:false" json:"edited"`

	// Relation to the canonical doctor record; the appointment holds a
	// weak reference, deleting the doctor does not cascade here.
	DoctorRecord User `gorm:"foreignKey:DoctorID" json:"-"`
}
