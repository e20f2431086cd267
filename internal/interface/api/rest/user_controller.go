package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourist-registry-api/internal/application/ports"
	"tourist-registry-api/internal/infrastructure/jwt"
	userDTO "tourist-registry-api/internal/interface/api/rest/dto/user"
	"tourist-registry-api/internal/interface/api/rest/middleware"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteUserMe, middleware.AuthMiddleware(jwtService), uc.GetMeHandler)

	return uc
}

// GetMeHandler resolves the caller from token claims; no user id in the URL.
func (uc *UserController) GetMeHandler(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmail)
	if email == "" {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token"},
		)
		return
	}

	u, err := uc.userService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindByEmail() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, userDTO.ToResponseUser(*u))
}
