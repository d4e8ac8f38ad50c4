package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/utils"
)

// MessageHandler handles the contact-form inbox.
type MessageHandler struct {
	DB *gorm.DB
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(db *gorm.DB) *MessageHandler {
	return &MessageHandler{DB: db}
}

// SendMessageRequest represents a contact-form submission.
type SendMessageRequest struct {
	FirstName string `json:"firstName" binding:"required,min=3"`
	LastName  string `json:"lastName" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,len=10,numeric"`
	Message   string `json:"message" binding:"required,min=10"`
}

// SendMessage stores a contact-form submission. Public, no session needed.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	message := models.Message{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	}
	if err := h.DB.Create(&message).Error; err != nil {
		utils.InternalServerError(c, "Failed to send message: "+err.Error())
		return
	}

	utils.Success(c, "Message sent successfully!", nil)
}

// GetAllMessages returns the inbox for the staff dashboard.
func (h *MessageHandler) GetAllMessages(c *gin.Context) {
	var messages []models.Message
	if err := h.DB.Order("created_at asc").Find(&messages).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch messages: "+err.Error())
		return
	}
	utils.Success(c, "", gin.H{"messages": messages})
}

// DeleteMessage removes one inbox entry.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id := c.Param("id")

	var message models.Message
	if err := h.DB.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Message not found!")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&message).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete message: "+err.Error())
		return
	}
	utils.Success(c, "Message deleted!", nil)
}
