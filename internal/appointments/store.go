package appointments

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/utils"
)

// DoctorDetails is the referenced doctor's current record joined onto an
// appointment at read time. It is nil when the doctor has since been
// deleted, which readers should surface as "doctor no longer available".
type DoctorDetails struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DoctorDepartment string `json:"doctorDepartment"`
}

// View is the doctor-joined projection of an appointment returned by every
// read and by every successful write.
type View struct {
	models.Appointment
	DoctorDetails *DoctorDetails `json:"doctorDetails,omitempty"`
}

// Store is durable keyed storage for appointments. Update replaces the
// whole document; the last write fully determines the post-state for any
// field it carries.
type Store interface {
	Create(ctx context.Context, appt *models.Appointment) error
	Get(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id string) error
	GetView(ctx context.Context, id string) (*View, error)
	ListAll(ctx context.Context) ([]View, error)
	ListByPatient(ctx context.Context, patientID string) ([]View, error)
}

// GormStore implements Store on the appointments table.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore creates a Store backed by the given database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Create validates the appointment against its field constraints and
// persists it.
func (s *GormStore) Create(ctx context.Context, appt *models.Appointment) error {
	if err := utils.Validate(appt); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationError(err))
	}
	return s.DB.WithContext(ctx).Create(appt).Error
}

// Get returns the stored appointment without the doctor join.
func (s *GormStore) Get(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.DB.WithContext(ctx).First(&appt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appt, nil
}

// Update replaces the stored appointment with the given document.
func (s *GormStore) Update(ctx context.Context, appt *models.Appointment) error {
	if err := utils.Validate(appt); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationError(err))
	}
	return s.DB.WithContext(ctx).Save(appt).Error
}

// Delete removes the appointment, reporting ErrNotFound when absent so a
// second delete of the same id fails cleanly.
func (s *GormStore) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetView returns the doctor-joined projection of one appointment.
func (s *GormStore) GetView(ctx context.Context, id string) (*View, error) {
	var appt models.Appointment
	err := s.DB.WithContext(ctx).Preload("DoctorRecord").First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	v := toView(appt)
	return &v, nil
}

// ListAll returns every appointment in insertion order, doctor-joined.
func (s *GormStore) ListAll(ctx context.Context) ([]View, error) {
	var appts []models.Appointment
	err := s.DB.WithContext(ctx).Preload("DoctorRecord").Order("created_at asc").Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return toViews(appts), nil
}

// ListByPatient returns the patient's appointments in insertion order,
// doctor-joined.
func (s *GormStore) ListByPatient(ctx context.Context, patientID string) ([]View, error) {
	var appts []models.Appointment
	err := s.DB.WithContext(ctx).Preload("DoctorRecord").
		Where("patient_id = ?", patientID).
		Order("created_at asc").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return toViews(appts), nil
}

func toView(appt models.Appointment) View {
	v := View{Appointment: appt}
	if appt.DoctorRecord.ID != "" {
		v.DoctorDetails = &DoctorDetails{
			ID:               appt.DoctorRecord.ID,
			FirstName:        appt.DoctorRecord.FirstName,
			LastName:         appt.DoctorRecord.LastName,
			DoctorDepartment: appt.DoctorRecord.DoctorDepartment,
		}
	}
	return v
}

func toViews(appts []models.Appointment) []View {
	views := make([]View, len(appts))
	for i, appt := range appts {
		views[i] = toView(appt)
	}
	return views
}
