package appointments

import (
	"context"
	"fmt"
	"time"

	"hospital-portal-server/internal/directory"
	"hospital-portal-server/internal/models"
)

// Service is the appointment lifecycle engine. It resolves doctor
// references through the directory, enforces scheduling invariants and
// keeps the embedded doctor snapshot in sync with the canonical record on
// every write that touches it.
type Service struct {
	store    Store
	resolver directory.Resolver
}

// NewService creates a Service over the given store and resolver.
func NewService(store Store, resolver directory.Resolver) *Service {
	return &Service{store: store, resolver: resolver}
}

// RequestInput carries the fields of a patient booking request. The doctor
// is addressed by entered name and department, not by id.
type RequestInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	DateOfBirth     time.Time
	Gender          models.Gender
	AppointmentDate time.Time
	Department      string
	DoctorFirstName string
	DoctorLastName  string
	HasVisited      bool
	Address         string
}

func (in RequestInput) missing() bool {
	return in.FirstName == "" || in.LastName == "" || in.Email == "" ||
		in.Phone == "" || in.DateOfBirth.IsZero() || in.Gender == "" ||
		in.AppointmentDate.IsZero() || in.Department == "" ||
		in.DoctorFirstName == "" || in.DoctorLastName == "" || in.Address == ""
}

// Request books a new appointment for the patient. The entered doctor name
// and department must resolve to exactly one doctor; otherwise nothing is
// persisted. New appointments always start Pending and unedited.
func (s *Service) Request(ctx context.Context, patientID string, in RequestInput) (*View, error) {
	if patientID == "" || in.missing() {
		return nil, ErrMissingFields
	}

	doctor, err := s.resolver.ResolveByName(ctx, in.DoctorFirstName, in.DoctorLastName, in.Department)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		DateOfBirth:     in.DateOfBirth,
		Gender:          in.Gender,
		AppointmentDate: NormalizeDate(in.AppointmentDate),
		Department:      in.Department,
		Doctor: models.DoctorSnapshot{
			FirstName: doctor.FirstName,
			LastName:  doctor.LastName,
		},
		HasVisited: in.HasVisited,
		Address:    in.Address,
		DoctorID:   doctor.ID,
		PatientID:  patientID,
		Status:     models.StatusPending,
	}

	if err := s.store.Create(ctx, appt); err != nil {
		return nil, err
	}
	return s.store.GetView(ctx, appt.ID)
}

// UpdateInput is a partial appointment mutation. Nil fields are left
// untouched; supplied fields fully overwrite the stored value.
type UpdateInput struct {
	DoctorID        *string
	Department      *string
	AppointmentDate *time.Time
	Status          *models.AppointmentStatus
	Edited          *bool
	HasVisited      *bool
}

// EditKind classifies which actor intent an update carries.
type EditKind int

const (
	// EditTriage is a staff decision: only status and hasVisited change.
	EditTriage EditKind = iota
	// EditReschedule is a patient-driven change of date, doctor or
	// department, expected to carry status=Pending and edited=true.
	EditReschedule
)

// Kind reports whether the update is a triage decision or a reschedule.
func (in UpdateInput) Kind() EditKind {
	if in.DoctorID != nil || in.Department != nil || in.AppointmentDate != nil {
		return EditReschedule
	}
	return EditTriage
}

// Update applies a partial mutation to the appointment. A supplied doctor
// id is validated against the directory and the embedded name snapshot is
// recomputed from the freshly loaded doctor record, overriding whatever
// snapshot the caller had. A supplied date is pinned to midday UTC. The
// returned view is re-read after the write.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*View, error) {
	appt, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.DoctorID != nil {
		doctor, err := s.resolver.ResolveByID(ctx, *in.DoctorID)
		if err != nil {
			return nil, err
		}
		appt.DoctorID = doctor.ID
		appt.Doctor = models.DoctorSnapshot{
			FirstName: doctor.FirstName,
			LastName:  doctor.LastName,
		}
	}
	if in.AppointmentDate != nil {
		appt.AppointmentDate = NormalizeDate(*in.AppointmentDate)
	}
	if in.Department != nil {
		appt.Department = *in.Department
	}
	if in.Status != nil {
		switch *in.Status {
		case models.StatusPending, models.StatusAccepted, models.StatusRejected:
			appt.Status = *in.Status
		default:
			return nil, fmt.Errorf("%w: status must be Pending, Accepted or Rejected", ErrValidation)
		}
	}
	if in.Edited != nil {
		appt.Edited = *in.Edited
	}
	if in.HasVisited != nil {
		appt.HasVisited = *in.HasVisited
	}

	if err := s.store.Update(ctx, appt); err != nil {
		return nil, err
	}
	return s.store.GetView(ctx, appt.ID)
}

// Delete removes the appointment. Deleting a missing id is ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Get returns the doctor-joined view of one appointment.
func (s *Service) Get(ctx context.Context, id string) (*View, error) {
	return s.store.GetView(ctx, id)
}

// Owner returns the patient id holding the appointment.
func (s *Service) Owner(ctx context.Context, id string) (string, error) {
	appt, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return appt.PatientID, nil
}

// ListAll returns every appointment, doctor-joined, in insertion order.
func (s *Service) ListAll(ctx context.Context) ([]View, error) {
	return s.store.ListAll(ctx)
}

// ListByPatient returns the patient's appointments, doctor-joined.
func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]View, error) {
	return s.store.ListByPatient(ctx, patientID)
}

// ParseDate reads the calendar-date form the booking UI sends, or a full
// RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// NormalizeDate pins the value to 12:00 UTC on its UTC calendar day, so
// the date cannot drift when rendered in another timezone.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 12, 0, 0, 0, time.UTC)
}
