package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"hospital-portal-server/internal/appointments"
	"hospital-portal-server/internal/directory"
	"hospital-portal-server/internal/middleware"
	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Service *appointments.Service
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(service *appointments.Service) *AppointmentHandler {
	return &AppointmentHandler{Service: service}
}

// CreateAppointmentRequest represents the request body for booking an
// appointment. Presence is checked by the lifecycle engine so incomplete
// forms all get the same answer.
type CreateAppointmentRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	DOB             string `json:"dob"`
	Gender          string `json:"gender"`
	AppointmentDate string `json:"appointment_date"`
	Department      string `json:"department"`
	DoctorFirstName string `json:"doctor_firstName"`
	DoctorLastName  string `json:"doctor_lastName"`
	HasVisited      bool   `json:"hasVisited"`
	Address         string `json:"address"`
}

// PostAppointment handles a patient booking request.
func (h *AppointmentHandler) PostAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Patient not authenticated")
		return
	}

	in := appointments.RequestInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Gender:          models.Gender(req.Gender),
		Department:      req.Department,
		DoctorFirstName: req.DoctorFirstName,
		DoctorLastName:  req.DoctorLastName,
		HasVisited:      req.HasVisited,
		Address:         req.Address,
	}

	var err error
	if in.DateOfBirth, err = parseDateField(req.DOB); err != nil {
		utils.BadRequest(c, "Invalid date of birth: "+err.Error())
		return
	}
	if in.AppointmentDate, err = parseDateField(req.AppointmentDate); err != nil {
		utils.BadRequest(c, "Invalid appointment date: "+err.Error())
		return
	}

	view, err := h.Service.Request(c.Request.Context(), patientID, in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.Success(c, "Appointment sent successfully!", gin.H{"appointment": view})
}

// GetAllAppointments returns every appointment, doctor-joined, for the
// staff dashboard.
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	views, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	utils.Success(c, "", gin.H{"appointments": views})
}

// UpdateAppointmentRequest represents a partial appointment mutation.
// Staff triage sends status/hasVisited only; a patient reschedule sends
// date/doctor/department together with status=Pending and edited=true.
type UpdateAppointmentRequest struct {
	DoctorID        *string `json:"doctorId"`
	Department      *string `json:"department"`
	AppointmentDate *string `json:"appointment_date"`
	Status          *string `json:"status"`
	Edited          *bool   `json:"edited"`
	HasVisited      *bool   `json:"hasVisited"`
}

// UpdateAppointment applies a triage or reschedule edit to an appointment.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if !h.authorizeOwnerOrAdmin(c, id) {
		return
	}

	in := appointments.UpdateInput{
		DoctorID:   req.DoctorID,
		Department: req.Department,
		Edited:     req.Edited,
		HasVisited: req.HasVisited,
	}
	if req.Status != nil {
		status := models.AppointmentStatus(*req.Status)
		in.Status = &status
	}
	if req.AppointmentDate != nil {
		date, err := appointments.ParseDate(*req.AppointmentDate)
		if err != nil {
			utils.BadRequest(c, "Invalid appointment date: "+err.Error())
			return
		}
		in.AppointmentDate = &date
	}

	view, err := h.Service.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.Success(c, "Appointment Updated Successfully!", gin.H{"appointment": view})
}

// DeleteAppointment removes an appointment.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id := c.Param("id")

	if !h.authorizeOwnerOrAdmin(c, id) {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, "Appointment deleted!", nil)
}

// GetMyAppointments returns the authenticated patient's appointments.
func (h *AppointmentHandler) GetMyAppointments(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Patient not authenticated")
		return
	}

	views, err := h.Service.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	utils.Success(c, "", gin.H{"appointments": views})
}

// authorizeOwnerOrAdmin lets admins touch any appointment and patients
// only their own. Responds and returns false when not allowed.
func (h *AppointmentHandler) authorizeOwnerOrAdmin(c *gin.Context, id string) bool {
	role, _ := middleware.GetUserRoleFromContext(c)
	if role == models.RoleAdmin {
		return true
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	owner, err := h.Service.Owner(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return false
	}
	if owner != userID {
		utils.Forbidden(c, "You are not allowed to modify this appointment.")
		return false
	}
	return true
}

// respondError maps lifecycle errors onto the HTTP contract: missing or
// malformed input is 400, missing entities and failed resolution are 404.
func (h *AppointmentHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appointments.ErrMissingFields):
		utils.BadRequest(c, "Please fill full details!")
	case errors.Is(err, appointments.ErrValidation):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, directory.ErrDoctorNotFound):
		utils.NotFound(c, "Doctor not found!")
	case errors.Is(err, directory.ErrDoctorConflict):
		utils.NotFound(c, "Doctors Conflict! Please contact through email or phone.")
	case errors.Is(err, directory.ErrInvalidDoctor):
		utils.NotFound(c, "Selected Doctor ID is invalid or not a Doctor.")
	case errors.Is(err, appointments.ErrNotFound):
		utils.NotFound(c, "Appointment not found!")
	default:
		utils.InternalServerError(c, "Database error: "+err.Error())
	}
}

func parseDateField(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return appointments.ParseDate(s)
}
