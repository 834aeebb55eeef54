package controllers

import (
	"errors"
	"log"
	"net/http"

	"studentreg-be/internal/models"
	"studentreg-be/internal/service"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	registrationService service.RegistrationService
}

func NewStudentController(registrationService service.RegistrationService) *StudentController {
	return &StudentController{
		registrationService: registrationService,
	}
}

// Register handles POST /api/students
func (sc *StudentController) Register(c *gin.Context) {
	var req models.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	response, err := sc.registrationService.Register(c.Request.Context(), &req)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": validationErr.Error(),
			})
			return
		}

		var conflictErr *service.ConflictError
		if errors.As(err, &conflictErr) {
			c.JSON(http.StatusConflict, gin.H{
				"error": conflictErr.Error(),
			})
			return
		}

		// Store or infrastructure failure: log the detail, return an
		// opaque message.
		log.Printf("ERROR: failed to register student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Server error",
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}
