package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateVerificationToken genera un token opaco para verificación
// de email y recuperación de contraseña
func GenerateVerificationToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateReservationReference genera una referencia corta y única
// para identificar reservas (ej: RES-1A2B3C4D)
func GenerateReservationReference() string {
	id := uuid.New()
	return fmt.Sprintf("RES-%X", id[:4])
}
