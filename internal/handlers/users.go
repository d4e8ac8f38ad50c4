package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-portal-server/internal/config"
	"hospital-portal-server/internal/middleware"
	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/utils"
)

// UserHandler handles registration, login and the admin-owned doctor
// directory.
type UserHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(db *gorm.DB, cfg *config.Config) *UserHandler {
	return &UserHandler{DB: db, Cfg: cfg}
}

// RegisterRequest represents the request body for patient registration.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,min=3"`
	LastName  string `json:"lastName" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,len=10,numeric"`
	Password  string `json:"password" binding:"required,min=8"`
	Gender    string `json:"gender" binding:"required,oneof=Male Female"`
	DOB       string `json:"dob" binding:"required"`
}

// PatientRegister handles self-service patient sign-up.
func (h *UserHandler) PatientRegister(c *gin.Context) {
	var req RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if h.emailTaken(c, req.Email) {
		return
	}

	dob, err := parseDateField(req.DOB)
	if err != nil {
		utils.BadRequest(c, "Invalid date of birth: "+err.Error())
		return
	}

	user := models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Gender:      models.Gender(req.Gender),
		DateOfBirth: &dob,
		Role:        models.RolePatient,
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.DB.Create(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to create user: "+err.Error())
		return
	}

	h.issueSession(c, &user, "User Registration Successful!")
}

// LoginRequest represents the request body for user login. The client
// declares which role it is logging in as; a mismatch is rejected.
type LoginRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Role            string `json:"role" binding:"required,oneof=Patient Doctor Admin"`
}

// Login handles user login for all roles.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.Password != req.ConfirmPassword {
		utils.BadRequest(c, "Password and Confirm Password do not match!")
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.BadRequest(c, "Invalid Email or Password!")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.BadRequest(c, "Invalid Email or Password!")
		return
	}
	if models.Role(req.Role) != user.Role {
		utils.BadRequest(c, "User with this role not found!")
		return
	}

	h.issueSession(c, &user, "User log in Successful!")
}

// CreateAdminRequest represents the request body for registering an admin.
type CreateAdminRequest struct {
	FirstName string `json:"firstName" binding:"required,min=3"`
	LastName  string `json:"lastName" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,len=10,numeric"`
	Password  string `json:"password" binding:"required,min=8"`
	Gender    string `json:"gender" binding:"required,oneof=Male Female"`
	DOB       string `json:"dob" binding:"required"`
}

// AddNewAdmin handles creating an admin account (admin only).
func (h *UserHandler) AddNewAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if h.emailTaken(c, req.Email) {
		return
	}

	dob, err := parseDateField(req.DOB)
	if err != nil {
		utils.BadRequest(c, "Invalid date of birth: "+err.Error())
		return
	}

	admin := models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Gender:      models.Gender(req.Gender),
		DateOfBirth: &dob,
		Role:        models.RoleAdmin,
	}
	if err := admin.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}
	if err := h.DB.Create(&admin).Error; err != nil {
		utils.InternalServerError(c, "Failed to create admin: "+err.Error())
		return
	}

	utils.Success(c, "New Admin Registered!", gin.H{"admin": admin.Sanitize()})
}

// CreateDoctorRequest represents the request body for registering a doctor.
// The avatar is hosted externally; only its URL is recorded.
type CreateDoctorRequest struct {
	FirstName        string `json:"firstName" binding:"required,min=3"`
	LastName         string `json:"lastName" binding:"required,min=3"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required,len=10,numeric"`
	Password         string `json:"password" binding:"required,min=8"`
	Gender           string `json:"gender" binding:"required,oneof=Male Female"`
	DOB              string `json:"dob" binding:"required"`
	DoctorDepartment string `json:"doctorDepartment" binding:"required"`
	DocAvatarURL     string `json:"docAvatar" binding:"omitempty,url"`
}

// AddNewDoctor handles creating a doctor record (admin only).
func (h *UserHandler) AddNewDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if h.emailTaken(c, req.Email) {
		return
	}

	dob, err := parseDateField(req.DOB)
	if err != nil {
		utils.BadRequest(c, "Invalid date of birth: "+err.Error())
		return
	}

	doctor := models.User{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Gender:           models.Gender(req.Gender),
		DateOfBirth:      &dob,
		Role:             models.RoleDoctor,
		DoctorDepartment: req.DoctorDepartment,
		DocAvatarURL:     req.DocAvatarURL,
	}
	if err := doctor.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}
	if err := h.DB.Create(&doctor).Error; err != nil {
		utils.InternalServerError(c, "Failed to create doctor: "+err.Error())
		return
	}

	utils.Success(c, "New Doctor Registered!", gin.H{"doctor": doctor.Sanitize()})
}

// GetAllDoctors returns every doctor record, sanitized.
func (h *UserHandler) GetAllDoctors(c *gin.Context) {
	var doctors []models.User
	if err := h.DB.Where("role = ?", models.RoleDoctor).Order("created_at asc").Find(&doctors).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}

	sanitized := make([]models.UserSanitized, len(doctors))
	for i, doctor := range doctors {
		sanitized[i] = doctor.Sanitize()
	}
	utils.Success(c, "", gin.H{"doctors": sanitized})
}

// GetUserDetails returns the authenticated user's profile.
func (h *UserHandler) GetUserDetails(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "", gin.H{"user": user.Sanitize()})
}

// LogoutAdmin clears the admin session cookie.
func (h *UserHandler) LogoutAdmin(c *gin.Context) {
	h.clearSession(c, models.RoleAdmin)
	utils.Success(c, "Admin logged out successfully!", nil)
}

// LogoutPatient clears the patient session cookie.
func (h *UserHandler) LogoutPatient(c *gin.Context) {
	h.clearSession(c, models.RolePatient)
	utils.Success(c, "Patient logged out successfully!", nil)
}

// UpdateDoctorRequest represents a partial doctor update. Password and
// avatar changes go through their own flows.
type UpdateDoctorRequest struct {
	FirstName        string `json:"firstName" binding:"omitempty,min=3"`
	LastName         string `json:"lastName" binding:"omitempty,min=3"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone" binding:"omitempty,len=10,numeric"`
	Gender           string `json:"gender" binding:"omitempty,oneof=Male Female"`
	DOB              string `json:"dob"`
	DoctorDepartment string `json:"doctorDepartment"`
}

// UpdateDoctor handles a partial update of a doctor record (admin only).
// Appointments referencing the doctor keep their stored snapshot until
// their own next write; reads join the fresh record regardless.
func (h *UserHandler) UpdateDoctor(c *gin.Context) {
	id := c.Param("id")

	var req UpdateDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var doctor models.User
	if err := h.DB.Where("id = ? AND role = ?", id, models.RoleDoctor).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Doctor not found!")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if req.Email != "" && req.Email != doctor.Email {
		var existing models.User
		if err := h.DB.Where("email = ? AND id != ?", req.Email, doctor.ID).First(&existing).Error; err == nil {
			utils.BadRequest(c, "New email is already in use")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.InternalServerError(c, "Database error checking email: "+err.Error())
			return
		}
		doctor.Email = req.Email
	}
	if req.FirstName != "" {
		doctor.FirstName = req.FirstName
	}
	if req.LastName != "" {
		doctor.LastName = req.LastName
	}
	if req.Phone != "" {
		doctor.Phone = req.Phone
	}
	if req.Gender != "" {
		doctor.Gender = models.Gender(req.Gender)
	}
	if req.DOB != "" {
		dob, err := parseDateField(req.DOB)
		if err != nil {
			utils.BadRequest(c, "Invalid date of birth: "+err.Error())
			return
		}
		doctor.DateOfBirth = &dob
	}
	if req.DoctorDepartment != "" {
		doctor.DoctorDepartment = req.DoctorDepartment
	}

	if err := h.DB.Save(&doctor).Error; err != nil {
		utils.InternalServerError(c, "Failed to update doctor: "+err.Error())
		return
	}

	utils.Success(c, "Doctor updated successfully!", gin.H{"doctor": doctor.Sanitize()})
}

// DeleteDoctor removes a doctor record (admin only). Existing
// appointments keep their weak doctorId reference; joined reads surface
// the doctor as no longer available.
func (h *UserHandler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")

	var doctor models.User
	if err := h.DB.Where("id = ? AND role = ?", id, models.RoleDoctor).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Doctor not found!")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&doctor).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete doctor: "+err.Error())
		return
	}
	utils.Success(c, "Doctor deleted!", nil)
}

// issueSession signs a token for the user, sets the role cookie and
// returns the token alongside the sanitized user.
func (h *UserHandler) issueSession(c *gin.Context, user *models.User, message string) {
	token, err := utils.GenerateToken(user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	c.SetCookie(
		utils.TokenCookieName(user.Role),
		token,
		h.Cfg.CookieExpireDays*24*60*60,
		"/",
		"",
		h.Cfg.Environment != "development",
		true,
	)

	utils.Success(c, message, gin.H{
		"user":  user.Sanitize(),
		"token": token,
	})
}

func (h *UserHandler) clearSession(c *gin.Context, role models.Role) {
	c.SetCookie(
		utils.TokenCookieName(role),
		"",
		-1,
		"/",
		"",
		h.Cfg.Environment != "development",
		true,
	)
}

// emailTaken rejects the request when the email is already registered.
func (h *UserHandler) emailTaken(c *gin.Context, email string) bool {
	var existing models.User
	if err := h.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.BadRequest(c, string(existing.Role)+" with this email already exists!")
		return true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return true
	}
	return false
}
