package services

import (
	"errors"
	"log"
	"strings"

	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/dto"
	"github.com/devcarkson/reserve-with-ease-backend/repositories"
	"github.com/devcarkson/reserve-with-ease-backend/utils"
)

// UserService define la lógica de negocio de cuentas de usuario
type UserService interface {
	Register(req dto.RegisterRequest) (*domain.User, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(userID uint) (*domain.User, error)
	UpdateProfile(userID uint, req dto.UpdateProfileRequest) (*domain.User, error)
	ChangePassword(userID uint, req dto.ChangePasswordRequest) error
	RequestPasswordReset(email string) error
	ResetPassword(token, newPassword string) error
	VerifyEmail(token string) error
	GetWishlist(userID uint) ([]domain.Property, error)
	AddToWishlist(userID, propertyID uint) error
	RemoveFromWishlist(userID, propertyID uint) error
}

type userService struct {
	repo         repositories.UserRepository
	tokenRepo    repositories.TokenRepository
	wishlistRepo repositories.WishlistRepository
	propertyRepo repositories.PropertyRepository
}

// NewUserService crea una nueva instancia del servicio
func NewUserService(
	repo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	wishlistRepo repositories.WishlistRepository,
	propertyRepo repositories.PropertyRepository,
) UserService {
	return &userService{
		repo:         repo,
		tokenRepo:    tokenRepo,
		wishlistRepo: wishlistRepo,
		propertyRepo: propertyRepo,
	}
}

// Register crea un nuevo usuario y genera su token de verificación de email
func (s *userService) Register(req dto.RegisterRequest) (*domain.User, error) {
	// 1. Verificar que el username no esté en uso
	existingUser, _ := s.repo.GetByUsername(req.Username)
	if existingUser != nil {
		return nil, errors.New("username already exists")
	}

	// 2. Verificar que el email no esté en uso
	existingUser, _ = s.repo.GetByEmail(req.Email)
	if existingUser != nil {
		return nil, errors.New("email already exists")
	}

	// 3. Hashear la contraseña
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.New("error hashing password")
	}

	// 4. Determinar el rol (por defecto es huésped)
	role := domain.RoleUser
	if req.Role == string(domain.RoleOwner) {
		role = domain.RoleOwner
	}

	user := &domain.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      role,
		Status:    domain.UserStatusActive,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	// 5. Generar token de verificación de email
	// El envío del mail queda a cargo del worker de notificaciones
	verification := &domain.EmailVerification{
		UserID: user.ID,
		Token:  utils.GenerateVerificationToken(),
	}
	if err := s.tokenRepo.CreateEmailVerification(verification); err != nil {
		log.Printf("Error creating email verification for user %d: %v", user.ID, err)
	}

	return user, nil
}

// Login autentica un usuario y genera un token JWT
func (s *userService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	var user *domain.User
	var err error

	// 1. Si contiene "@" asumimos que es email
	if strings.Contains(req.UsernameOrEmail, "@") {
		user, err = s.repo.GetByEmail(req.UsernameOrEmail)
	} else {
		user, err = s.repo.GetByUsername(req.UsernameOrEmail)
	}

	// 2. Error genérico por seguridad: no revelamos si la cuenta existe
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, errors.New("invalid credentials")
	}

	// 3. Las cuentas suspendidas no pueden loguearse
	if user.Status == domain.UserStatusSuspended {
		return nil, errors.New("account suspended")
	}

	token, err := utils.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, errors.New("error generating token")
	}

	return &dto.LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *userService) GetProfile(userID uint) (*domain.User, error) {
	return s.repo.GetByID(userID)
}

// UpdateProfile actualiza los datos del usuario autenticado
func (s *userService) UpdateProfile(userID uint, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, errors.New("user not found")
	}

	// Si cambia username o email, verificar que no estén en uso
	if req.Username != "" && req.Username != user.Username {
		existingUser, _ := s.repo.GetByUsername(req.Username)
		if existingUser != nil {
			return nil, errors.New("username already exists")
		}
		user.Username = req.Username
	}

	if req.Email != "" && req.Email != user.Email {
		existingUser, _ := s.repo.GetByEmail(req.Email)
		if existingUser != nil {
			return nil, errors.New("email already exists")
		}
		user.Email = req.Email
		// Un email nuevo vuelve a requerir verificación
		user.EmailVerified = false
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword cambia la contraseña verificando la actual
func (s *userService) ChangePassword(userID uint, req dto.ChangePasswordRequest) error {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return errors.New("user not found")
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.Password) {
		return errors.New("current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return errors.New("error hashing password")
	}

	user.Password = hashedPassword
	return s.repo.Update(user)
}

// RequestPasswordReset genera un token de recuperación.
// Siempre responde OK aunque el email no exista, por seguridad.
func (s *userService) RequestPasswordReset(email string) error {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		log.Printf("Password reset requested for unknown email %s", email)
		return nil
	}

	reset := &domain.PasswordReset{
		UserID: user.ID,
		Token:  utils.GenerateVerificationToken(),
	}
	return s.tokenRepo.CreatePasswordReset(reset)
}

// ResetPassword establece la nueva contraseña usando el token de recuperación
func (s *userService) ResetPassword(token, newPassword string) error {
	// 1. Buscar y validar el token
	reset, err := s.tokenRepo.GetPasswordReset(token)
	if err != nil {
		return errors.New("invalid or expired token")
	}
	if reset.Used || reset.IsExpired() {
		return errors.New("invalid or expired token")
	}

	user, err := s.repo.GetByID(reset.UserID)
	if err != nil {
		return errors.New("user not found")
	}

	// 2. Hashear y guardar la nueva contraseña
	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return errors.New("error hashing password")
	}
	user.Password = hashedPassword
	if err := s.repo.Update(user); err != nil {
		return err
	}

	// 3. Invalidar el token
	return s.tokenRepo.MarkPasswordResetUsed(reset)
}

// VerifyEmail marca el email del usuario como verificado
func (s *userService) VerifyEmail(token string) error {
	verification, err := s.tokenRepo.GetEmailVerification(token)
	if err != nil {
		return errors.New("invalid token")
	}
	if verification.Used {
		return errors.New("invalid token")
	}

	user, err := s.repo.GetByID(verification.UserID)
	if err != nil {
		return errors.New("user not found")
	}

	user.EmailVerified = true
	if err := s.repo.Update(user); err != nil {
		return err
	}

	return s.tokenRepo.MarkEmailVerificationUsed(verification)
}

// GetWishlist devuelve las propiedades guardadas por el usuario
func (s *userService) GetWishlist(userID uint) ([]domain.Property, error) {
	items, err := s.wishlistRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	properties := make([]domain.Property, 0, len(items))
	for _, item := range items {
		property, err := s.propertyRepo.GetByID(item.PropertyID)
		if err != nil {
			// La propiedad pudo haber sido eliminada
			continue
		}
		properties = append(properties, *property)
	}
	return properties, nil
}

// AddToWishlist guarda una propiedad en la lista de deseos
func (s *userService) AddToWishlist(userID, propertyID uint) error {
	if _, err := s.propertyRepo.GetByID(propertyID); err != nil {
		return errors.New("property not found")
	}

	exists, err := s.wishlistRepo.Exists(userID, propertyID)
	if err != nil {
		return err
	}
	if exists {
		return errors.New("property already in wishlist")
	}

	return s.wishlistRepo.Add(&domain.WishlistItem{
		UserID:     userID,
		PropertyID: propertyID,
	})
}

func (s *userService) RemoveFromWishlist(userID, propertyID uint) error {
	return s.wishlistRepo.Remove(userID, propertyID)
}
