package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/services"
)

// AuthController maneja los endpoints de autenticación y perfil
type AuthController struct {
	service services.UserService
}

// NewAuthController crea una nueva instancia del controlador
func NewAuthController(service services.UserService) *AuthController {
	return &AuthController{service: service}
}

// Register maneja POST /api/auth/register
// Este endpoint se usa para REGISTRAR un nuevo usuario
func (ctrl *AuthController) Register(c *gin.Context) {
	// 1. Leer el JSON del body y parsearlo a RegisterRequest
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Si el JSON es inválido o faltan campos, devolver error 400
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	// 2. Llamar al servicio para crear el usuario
	user, err := ctrl.service.Register(req)
	if err != nil {
		// Si hay error (username duplicado, etc), devolver 400
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "register_error",
			Message: err.Error(),
		})
		return
	}

	// 3. Devolver respuesta exitosa con el usuario creado
	c.JSON(http.StatusCreated, dto.SuccessResponse{
		Message: "User registered successfully",
		Data:    user,
	})
}

// Login maneja POST /api/auth/login
// Este es el endpoint más importante: autentica al usuario
func (ctrl *AuthController) Login(c *gin.Context) {
	// 1. Leer el JSON del body
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	// 2. Llamar al servicio para hacer login
	// El servicio valida contraseña y genera el JWT
	response, err := ctrl.service.Login(req)
	if err != nil {
		// Si las credenciales son incorrectas, devolver 401 (Unauthorized)
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "login_error",
			Message: err.Error(),
		})
		return
	}

	// 3. Devolver el token JWT y los datos del usuario
	c.JSON(http.StatusOK, response)
}

// GetProfile maneja GET /api/auth/profile
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	user, err := ctrl.service.GetProfile(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "profile_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile maneja PUT /api/auth/profile
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	user, err := ctrl.service.UpdateProfile(currentUserID(c), req)
	if err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "update_profile_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Profile updated successfully",
		Data:    user,
	})
}

// ChangePassword maneja POST /api/auth/change-password
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if err := ctrl.service.ChangePassword(currentUserID(c), req); err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "change_password_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Password changed successfully",
	})
}

// RequestPasswordReset maneja POST /api/auth/password-reset
// Siempre devuelve 200 para no revelar qué emails existen
func (ctrl *AuthController) RequestPasswordReset(c *gin.Context) {
	var req dto.RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if err := ctrl.service.RequestPasswordReset(req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "password_reset_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "If the email exists, a reset token was sent",
	})
}

// ResetPassword maneja POST /api/auth/password-reset/:token
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if err := ctrl.service.ResetPassword(c.Param("token"), req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "reset_password_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Password reset successfully",
	})
}

// VerifyEmail maneja GET /api/auth/verify-email/:token
func (ctrl *AuthController) VerifyEmail(c *gin.Context) {
	if err := ctrl.service.VerifyEmail(c.Param("token")); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "verify_email_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Email verified successfully",
	})
}

// GetWishlist maneja GET /api/auth/wishlist
func (ctrl *AuthController) GetWishlist(c *gin.Context) {
	properties, err := ctrl.service.GetWishlist(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "wishlist_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Wishlist retrieved successfully",
		Data:    properties,
	})
}

// AddToWishlist maneja POST /api/auth/wishlist
func (ctrl *AuthController) AddToWishlist(c *gin.Context) {
	var req dto.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if err := ctrl.service.AddToWishlist(currentUserID(c), req.PropertyID); err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "wishlist_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{
		Message: "Property added to wishlist",
	})
}

// RemoveFromWishlist maneja DELETE /api/auth/wishlist/:propertyID
func (ctrl *AuthController) RemoveFromWishlist(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "propertyID")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid property ID",
		})
		return
	}

	if err := ctrl.service.RemoveFromWishlist(currentUserID(c), propertyID); err != nil {
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Error:   "wishlist_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Property removed from wishlist",
	})
}
