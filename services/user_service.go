package services

import (
	"errors"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shopcore-api/dto"
	"github.com/shopcore-api/models"
	"github.com/shopcore-api/repositories"
	"github.com/shopcore-api/utils"
)

// TokenTTL is the lifetime of issued access tokens.
const TokenTTL = 3600 * time.Second

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[a-zA-Z]{2,}$`)

// UserService handles account creation, authentication, profile updates and
// lifecycle status transitions.
type UserService struct {
	users     *repositories.UserRepository
	jwtSecret string
}

// NewUserService creates a user service with its repository and the token
// signing secret injected.
func NewUserService(users *repositories.UserRepository, jwtSecret string) *UserService {
	return &UserService{users: users, jwtSecret: jwtSecret}
}

// SignUp creates a new account. The password is hashed before it is
// persisted and never returned in plaintext.
func (s *UserService) SignUp(req dto.SignUpRequest) (models.User, error) {
	if len(req.Password) < minPasswordLength {
		return models.User{}, &utils.ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}

	taken, err := s.users.ExistsByEmail(req.Email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, &utils.ConflictError{Message: "email already registered"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
		Status:   models.UserStatusActive,
		Password: string(hashed),
	}

	user, err = s.users.Create(user)
	if err != nil {
		return models.User{}, err
	}

	logrus.WithFields(logrus.Fields{"userId": user.ID, "role": user.Role}).Info("user registered")

	user.Password = ""
	return user, nil
}

// LogIn authenticates a user, records the login time and issues a signed
// token embedding the user id and role.
func (s *UserService) LogIn(email, password string) (dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AuthResponse{}, &utils.NotFoundError{Resource: "user", ID: email}
	} else if err != nil {
		return dto.AuthResponse{}, err
	}

	if !user.CanLogIn() {
		return dto.AuthResponse{}, &utils.AuthorizationError{Message: "account is not authorized"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return dto.AuthResponse{}, &utils.AuthenticationError{Message: "password mismatch"}
	}

	token, expiresAt, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, TokenTTL)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	now := time.Now()
	user.LastLogin = &now
	user, err = s.users.Save(user)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	user.Password = ""
	return dto.AuthResponse{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// UpdateUser applies a partial patch to a user. Only provided fields are
// changed; a provided password is length-checked and hashed, a provided
// email is shape-checked.
func (s *UserService) UpdateUser(id uint, req dto.UpdateUserRequest) (models.User, error) {
	user, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, &utils.NotFoundError{Resource: "user", ID: id}
	} else if err != nil {
		return models.User{}, err
	}

	if req.Password != nil {
		if len(*req.Password) < minPasswordLength {
			return models.User{}, &utils.ValidationError{Field: "password", Message: "must be at least 8 characters"}
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		user.Password = string(hashed)
	}
	if req.Email != nil {
		if !emailPattern.MatchString(*req.Email) {
			return models.User{}, &utils.ValidationError{Field: "email", Message: "invalid email format"}
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	user, err = s.users.Save(user)
	if err != nil {
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

// ChangeUserStatus moves an account to the given lifecycle status. Any
// status is reachable from any status; DELETED is a soft marker, the record
// is never removed.
func (s *UserService) ChangeUserStatus(id uint, status models.UserStatus) (models.User, error) {
	user, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, &utils.NotFoundError{Resource: "user", ID: id}
	} else if err != nil {
		return models.User{}, err
	}

	user.Status = status
	user, err = s.users.Save(user)
	if err != nil {
		return models.User{}, err
	}

	logrus.WithFields(logrus.Fields{"userId": user.ID, "status": user.Status}).Info("user status changed")

	user.Password = ""
	return user, nil
}
