package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// currentUserID obtiene el ID del usuario autenticado del contexto.
// AuthMiddleware lo guarda al validar el token.
func currentUserID(c *gin.Context) uint {
	value, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	id, _ := value.(uint)
	return id
}

// isAdmin indica si el usuario autenticado es administrador
func isAdmin(c *gin.Context) bool {
	role, exists := c.Get("user_role")
	if !exists {
		return false
	}
	return role == "admin"
}

// parseIDParam convierte un parámetro de la URL a uint
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	idParam := c.Param(name)
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// errorStatus mapea los mensajes de error de los servicios
// al status HTTP correspondiente
func errorStatus(err error) int {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		return http.StatusNotFound
	case strings.Contains(msg, "access denied"),
		strings.Contains(msg, "not the property owner"),
		strings.Contains(msg, "not the review author"):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
