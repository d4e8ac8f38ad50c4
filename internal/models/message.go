package models

// Message represents a contact-form submission. It is a standalone inbox
// entity with no relation to appointments or registered users.
type Message struct {
	BaseModel
	FirstName string `gorm:"size:100;not null" json:"firstName" validate:"required,min=3"`
	LastName  string `gorm:"size:100;not null" json:"lastName" validate:"required,min=3"`
	Email     string `gorm:"size:255;not null" json:"email" validate:"required,email"`
	Phone     string `gorm:"size:20;not null" json:"phone" validate:"required,len=10,numeric"`
	Message   string `gorm:"type:text;not null" json:"message" validate:"required,min=10"`
}
