package directory

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
)

// Resolution failures surfaced to callers.
var (
	// ErrDoctorNotFound means no doctor matched the entered name and department.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrDoctorConflict means more than one doctor matched; the caller must
	// disambiguate out of band, the system never auto-picks one.
	ErrDoctorConflict = errors.New("doctors conflict, please contact through email or phone")
	// ErrInvalidDoctor means the referenced id is absent or not a doctor.
	ErrInvalidDoctor = errors.New("selected doctor id is invalid or not a doctor")
)

// Resolver maps a human-entered doctor name/department pair, or a direct
// identity reference, to a canonical doctor record. Lookups are read-only.
type Resolver interface {
	ResolveByName(ctx context.Context, firstName, lastName, department string) (*models.User, error)
	ResolveByID(ctx context.Context, id string) (*models.User, error)
}

// GormResolver resolves doctors against the users table.
type GormResolver struct {
	DB *gorm.DB
}

// NewGormResolver creates a Resolver backed by the given database.
func NewGormResolver(db *gorm.DB) *GormResolver {
	return &GormResolver{DB: db}
}

// ResolveByName returns the single doctor matching first name, last name and
// department. Zero matches is ErrDoctorNotFound, more than one is
// ErrDoctorConflict.
func (r *GormResolver) ResolveByName(ctx context.Context, firstName, lastName, department string) (*models.User, error) {
	var doctors []models.User
	err := r.DB.WithContext(ctx).
		Where("first_name = ? AND last_name = ? AND role = ? AND doctor_department = ?",
			firstName, lastName, models.RoleDoctor, department).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}

	switch len(doctors) {
	case 0:
		return nil, ErrDoctorNotFound
	case 1:
		return &doctors[0], nil
	default:
		return nil, ErrDoctorConflict
	}
}

// ResolveByID returns the doctor with the given id, validating the role only.
// Name matching is bypassed for direct identity assignment.
func (r *GormResolver) ResolveByID(ctx context.Context, id string) (*models.User, error) {
	var doctor models.User
	if err := r.DB.WithContext(ctx).First(&doctor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidDoctor
		}
		return nil, err
	}
	if doctor.Role != models.RoleDoctor {
		return nil, ErrInvalidDoctor
	}
	return &doctor, nil
}
