package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"cat-facts/internal/entity"
	"cat-facts/internal/repo/persistent"
	"cat-facts/pkg/jwt"
	"cat-facts/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_ ]{2,50}$`)

type AuthUseCase interface {
	Signup(username, email, password string) (*entity.User, string, error)
	Login(usernameOrEmail, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Signup(username, email, password string) (*entity.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if !usernamePattern.MatchString(username) {
		return nil, "", fmt.Errorf("%w: username must be 2-50 characters of letters, digits, spaces or underscores", entity.ErrInvalidInput)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: invalid email address", entity.ErrInvalidInput)
	}
	if len(password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", entity.ErrInvalidInput)
	}

	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, "", entity.ErrDuplicateUsername
	}
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", entity.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process signup")
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		AuthProvider: "local",
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, "user")
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.PasswordHash = ""
	return user, token, nil
}

// Login accepts either a username or an email address as the identifier.
func (uc *authUseCase) Login(usernameOrEmail, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByUsername(usernameOrEmail)
	if err != nil {
		if !errors.Is(err, entity.ErrUserNotFound) {
			return nil, "", err
		}
		user, err = uc.userRepo.GetByEmail(strings.ToLower(usernameOrEmail))
		if err != nil {
			return nil, "", entity.ErrInvalidCredentials
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, "user")
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
