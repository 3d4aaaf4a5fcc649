package services

import (
	"testing"
	"time"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/dto"
)

func newUserService() (UserService, *mockUserRepository, *mockTokenRepository, *mockPropertyRepository) {
	userRepo := newMockUserRepository()
	tokenRepo := newMockTokenRepository()
	wishlistRepo := newMockWishlistRepository()
	propertyRepo := newMockPropertyRepository()
	return NewUserService(userRepo, tokenRepo, wishlistRepo, propertyRepo), userRepo, tokenRepo, propertyRepo
}

// Test: Registro exitoso
func TestRegister_Success(t *testing.T) {
	service, _, tokenRepo, _ := newUserService()

	req := dto.RegisterRequest{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	}

	user, err := service.Register(req)

	// Verificaciones
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if user == nil {
		t.Fatal("Expected user, got nil")
	}

	if user.Username != req.Username {
		t.Errorf("Expected username %s, got %s", req.Username, user.Username)
	}

	if user.Role != domain.RoleUser {
		t.Errorf("Expected role %s, got %s", domain.RoleUser, user.Role)
	}

	// Verificar que la contraseña fue hasheada (no es la original)
	if user.Password == req.Password {
		t.Error("Password should be hashed, not plain text")
	}

	// Se debe generar un token de verificación de email
	if len(tokenRepo.verifications) != 1 {
		t.Errorf("Expected 1 email verification token, got %d", len(tokenRepo.verifications))
	}
}

// Test: Registro como dueño de propiedades
func TestRegister_OwnerRole(t *testing.T) {
	service, _, _, _ := newUserService()

	req := dto.RegisterRequest{
		Username:  "owner",
		Email:     "owner@example.com",
		Password:  "password123",
		FirstName: "Owner",
		LastName:  "User",
		Role:      "owner",
	}

	user, err := service.Register(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Role != domain.RoleOwner {
		t.Errorf("Expected role %s, got %s", domain.RoleOwner, user.Role)
	}
}

// Test: Error al registrar username duplicado
func TestRegister_DuplicateUsername(t *testing.T) {
	service, _, _, _ := newUserService()

	req1 := dto.RegisterRequest{
		Username:  "testuser",
		Email:     "test1@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	}
	service.Register(req1)

	req2 := dto.RegisterRequest{
		Username:  "testuser", // Username duplicado
		Email:     "test2@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	}

	user, err := service.Register(req2)

	if err == nil {
		t.Error("Expected error for duplicate username, got nil")
	}

	if user != nil {
		t.Error("Expected nil user, got user")
	}

	if err.Error() != "username already exists" {
		t.Errorf("Expected 'username already exists' error, got %v", err)
	}
}

// Test: Error al registrar email duplicado
func TestRegister_DuplicateEmail(t *testing.T) {
	service, _, _, _ := newUserService()

	req1 := dto.RegisterRequest{
		Username:  "testuser1",
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	}
	service.Register(req1)

	req2 := dto.RegisterRequest{
		Username:  "testuser2",
		Email:     "test@example.com", // Email duplicado
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	}

	user, err := service.Register(req2)

	if err == nil {
		t.Error("Expected error for duplicate email, got nil")
	}

	if user != nil {
		t.Error("Expected nil user, got user")
	}

	if err.Error() != "email already exists" {
		t.Errorf("Expected 'email already exists' error, got %v", err)
	}
}

// Test: Login exitoso con username
func TestLogin_SuccessWithUsername(t *testing.T) {
	service, _, _, _ := newUserService()

	service.Register(dto.RegisterRequest{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})

	response, err := service.Login(dto.LoginRequest{
		UsernameOrEmail: "testuser",
		Password:        "password123",
	})

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if response == nil {
		t.Fatal("Expected login response, got nil")
	}

	if response.Token == "" {
		t.Error("Expected JWT token, got empty string")
	}

	if response.User.Username != "testuser" {
		t.Errorf("Expected username testuser, got %s", response.User.Username)
	}
}

// Test: Login exitoso con email
func TestLogin_SuccessWithEmail(t *testing.T) {
	service, _, _, _ := newUserService()

	service.Register(dto.RegisterRequest{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})

	response, err := service.Login(dto.LoginRequest{
		UsernameOrEmail: "test@example.com",
		Password:        "password123",
	})

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if response == nil {
		t.Fatal("Expected login response, got nil")
	}

	if response.Token == "" {
		t.Error("Expected JWT token, got empty string")
	}
}

// Test: Login fallido - contraseña incorrecta
func TestLogin_WrongPassword(t *testing.T) {
	service, _, _, _ := newUserService()

	service.Register(dto.RegisterRequest{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})

	response, err := service.Login(dto.LoginRequest{
		UsernameOrEmail: "testuser",
		Password:        "wrongpassword",
	})

	if err == nil {
		t.Error("Expected error for wrong password, got nil")
	}

	if response != nil {
		t.Error("Expected nil response, got response")
	}

	if err.Error() != "invalid credentials" {
		t.Errorf("Expected 'invalid credentials' error, got %v", err)
	}
}

// Test: Login fallido - cuenta suspendida
func TestLogin_SuspendedAccount(t *testing.T) {
	service, userRepo, _, _ := newUserService()

	user, _ := service.Register(dto.RegisterRequest{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})

	user.Status = domain.UserStatusSuspended
	userRepo.Update(user)

	response, err := service.Login(dto.LoginRequest{
		UsernameOrEmail: "testuser",
		Password:        "password123",
	})

	if err == nil {
		t.Error("Expected error for suspended account, got nil")
	}

	if response != nil {
		t.Error("Expected nil response, got response")
	}

	if err.Error() != "account suspended" {
		t.Errorf("Expected 'account suspended' error, got %v", err)
	}
}

// Test: Cambiar contraseña verificando la actual
func TestChangePassword(t *testing.T) {
	service, _, _, _ := newUserService()

	user, _ := service.Register(dto.RegisterRequest{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})

	// Contraseña actual incorrecta
	err := service.ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "wrongpassword",
		NewPassword:     "newpassword456",
	})
	if err == nil || err.Error() != "current password is incorrect" {
		t.Errorf("Expected 'current password is incorrect' error, got %v", err)
	}

	// Contraseña actual correcta
	err = service.ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword456",
	})
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// El login con la nueva contraseña debe funcionar
	if _, err := service.Login(dto.LoginRequest{
		UsernameOrEmail: "testuser",
		Password:        "newpassword456",
	}); err != nil {
		t.Errorf("Expected login with new password to succeed, got %v", err)
	}
}

// Test: Flujo de recuperación de contraseña
func TestResetPassword_Flow(t *testing.T) {
	service, _, tokenRepo, _ := newUserService()

	service.Register(dto.RegisterRequest{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})

	if err := service.RequestPasswordReset("test@example.com"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Obtener el token generado
	var token string
	for tk := range tokenRepo.resets {
		token = tk
	}
	if token == "" {
		t.Fatal("Expected a password reset token to be created")
	}

	if err := service.ResetPassword(token, "newpassword456"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// El token no se puede reutilizar
	if err := service.ResetPassword(token, "otherpassword"); err == nil {
		t.Error("Expected error reusing the token, got nil")
	}

	// Login con la nueva contraseña
	if _, err := service.Login(dto.LoginRequest{
		UsernameOrEmail: "testuser",
		Password:        "newpassword456",
	}); err != nil {
		t.Errorf("Expected login with new password to succeed, got %v", err)
	}
}

// Test: El token de recuperación expira a la hora
func TestResetPassword_ExpiredToken(t *testing.T) {
	service, _, tokenRepo, _ := newUserService()

	user, _ := service.Register(dto.RegisterRequest{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})

	expired := &domain.PasswordReset{
		UserID:    user.ID,
		Token:     "expired-token",
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	tokenRepo.CreatePasswordReset(expired)

	err := service.ResetPassword("expired-token", "newpassword456")
	if err == nil || err.Error() != "invalid or expired token" {
		t.Errorf("Expected 'invalid or expired token' error, got %v", err)
	}
}

// Test: Recuperación con email desconocido no revela nada
func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	service, _, tokenRepo, _ := newUserService()

	if err := service.RequestPasswordReset("unknown@example.com"); err != nil {
		t.Errorf("Expected no error for unknown email, got %v", err)
	}

	if len(tokenRepo.resets) != 0 {
		t.Errorf("Expected no reset tokens, got %d", len(tokenRepo.resets))
	}
}

// Test: Verificación de email
func TestVerifyEmail(t *testing.T) {
	service, userRepo, tokenRepo, _ := newUserService()

	user, _ := service.Register(dto.RegisterRequest{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})

	var token string
	for tk := range tokenRepo.verifications {
		token = tk
	}

	if err := service.VerifyEmail(token); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, _ := userRepo.GetByID(user.ID)
	if !updated.EmailVerified {
		t.Error("Expected email to be verified")
	}

	// El token no se puede reutilizar
	if err := service.VerifyEmail(token); err == nil {
		t.Error("Expected error reusing the verification token, got nil")
	}
}

// Test: Actualizar el email vuelve a requerir verificación
func TestUpdateProfile_EmailResetsVerification(t *testing.T) {
	service, userRepo, tokenRepo, _ := newUserService()

	user, _ := service.Register(dto.RegisterRequest{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})

	var token string
	for tk := range tokenRepo.verifications {
		token = tk
	}
	service.VerifyEmail(token)

	updated, err := service.UpdateProfile(user.ID, dto.UpdateProfileRequest{
		Email: "new@example.com",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Email != "new@example.com" {
		t.Errorf("Expected email new@example.com, got %s", updated.Email)
	}

	stored, _ := userRepo.GetByID(user.ID)
	if stored.EmailVerified {
		t.Error("Expected email verification to be reset after email change")
	}
}

// Test: Wishlist - agregar, duplicado y quitar
func TestWishlist(t *testing.T) {
	service, _, _, propertyRepo := newUserService()

	user, _ := service.Register(dto.RegisterRequest{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})

	property := &domain.Property{Name: "Lagos Apartment", OwnerID: 99, City: "Lagos"}
	propertyRepo.Create(property)

	if err := service.AddToWishlist(user.ID, property.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Duplicado
	if err := service.AddToWishlist(user.ID, property.ID); err == nil {
		t.Error("Expected error adding duplicate wishlist item, got nil")
	}

	// Propiedad inexistente
	if err := service.AddToWishlist(user.ID, 999); err == nil {
		t.Error("Expected error for non-existent property, got nil")
	}

	properties, err := service.GetWishlist(user.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(properties) != 1 {
		t.Fatalf("Expected 1 property in wishlist, got %d", len(properties))
	}
	if properties[0].Name != "Lagos Apartment" {
		t.Errorf("Expected property Lagos Apartment, got %s", properties[0].Name)
	}

	if err := service.RemoveFromWishlist(user.ID, property.ID); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	properties, _ = service.GetWishlist(user.ID)
	if len(properties) != 0 {
		t.Errorf("Expected empty wishlist, got %d items", len(properties))
	}
}
