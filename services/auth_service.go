package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"maintenance-ticketing-server/models"
	"maintenance-ticketing-server/utils"
)

// AuthService handles technician signup and login
type AuthService struct {
	db *gorm.DB
}

// NewAuthService creates a new auth service
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// SignupInput carries the signup form fields
type SignupInput struct {
	FirstName       string
	LastName        string
	Phone           string
	Email           string
	Password        string
	ConfirmPassword string
}

// Signup validates the input and creates a technician account. No row is
// written unless every check passes, so a mismatched confirmation never
// leaves a partial account behind.
func (s *AuthService) Signup(input SignupInput) (*models.Technician, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)

	var v validator
	v.requireNonEmpty(input.FirstName, "First name is required.")
	v.requireNonEmpty(input.LastName, "Last name is required.")
	v.requireNonEmpty(input.Phone, "Phone number is required.")
	v.requireNonEmpty(input.Email, "Email is required.")
	if input.Email != "" && !utils.ValidateEmail(input.Email) {
		v.add("Please enter a valid email address.")
	}
	if len(input.Password) < utils.MinPasswordLength {
		v.add("Password must be at least 8 characters.")
	}
	if input.Password != input.ConfirmPassword {
		v.add("Passwords do not match.")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	// Fast-path duplicate check; the unique index on email is authoritative.
	var existing models.Technician
	if err := s.db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	technician := models.Technician{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := s.db.Create(&technician).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return &technician, nil
}

// Login verifies the credentials and returns the technician. Missing
// accounts and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.Technician, error) {
	email = strings.TrimSpace(email)

	var v validator
	v.requireNonEmpty(email, "Email is required.")
	v.requireNonEmpty(password, "Password is required.")
	if err := v.err(); err != nil {
		return nil, err
	}

	var technician models.Technician
	if err := s.db.Where("email = ?", email).First(&technician).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, technician.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &technician, nil
}
