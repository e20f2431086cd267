package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourist-registry-api/internal/application/ports"
	"tourist-registry-api/internal/application/services"
	userDB "tourist-registry-api/internal/infrastructure/db/postgres/user"
	userDTO "tourist-registry-api/internal/interface/api/rest/dto/user"

	"tourist-registry-api/internal/interface/api/rest/dto/registration"
	"tourist-registry-api/internal/interface/api/rest/validator"
)

type RegistrationController struct {
	logger              *zap.Logger
	registrationService ports.RegistrationService
}

func NewRegistrationController(
	r *gin.Engine,
	logger *zap.Logger,
	registrationService ports.RegistrationService,
) *RegistrationController {
	rc := &RegistrationController{
		logger:              logger,
		registrationService: registrationService,
	}

	r.POST(RouteRegistrationCode, rc.SendCodeHandler)
	r.POST(RouteRegistrationCodeVerify, rc.VerifyCodeHandler)
	r.POST(RouteRegistration, rc.RegisterHandler)

	return rc
}

func (rc *RegistrationController) SendCodeHandler(c *gin.Context) {
	var req registration.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateSendCode(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	if err := rc.registrationService.IssueConfirmationCode(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, services.ErrCodeDelivery) {
			c.JSON(
				http.StatusBadGateway,
				gin.H{"error": "failed to send confirmation code"},
			)
			rc.logger.Error("IssueConfirmationCode() delivery error", zap.Error(err))
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to send confirmation code"},
		)
		rc.logger.Error("IssueConfirmationCode() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "confirmation code sent successfully"})
}

func (rc *RegistrationController) VerifyCodeHandler(c *gin.Context) {
	var req registration.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateVerifyCode(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	if err := rc.registrationService.VerifyConfirmationCode(c.Request.Context(), req.Email, req.Code); err != nil {
		// same answer for wrong code and unknown email
		if errors.Is(err, services.ErrInvalidCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid confirmation code"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to verify confirmation code"},
		)
		rc.logger.Error("VerifyConfirmationCode() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user confirmed successfully"})
}

func (rc *RegistrationController) RegisterHandler(c *gin.Context) {
	var req registration.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateRegistration(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	uDomain, err := registration.ToDomainUser(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	u, err := rc.registrationService.CompleteRegistration(c.Request.Context(), uDomain, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, userDB.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrConfirmationRequired):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUnknownDocumentType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to register user"},
			)
			rc.logger.Error("CompleteRegistration() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusCreated, userDTO.ToResponseUser(*u))
}
