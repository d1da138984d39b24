package service

import (
	"context"
	"errors"

	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/model"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/repository"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken means a user already exists under the given email
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown emails and wrong passwords
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the slice of the user repository the auth service needs
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (string, error)
}

var _ UserStore = (*repository.UserRepository)(nil)

// AuthService handles registration and login
type AuthService struct {
	userRepo   UserStore
	jwtManager *auth.JWTManager
}

func NewAuthService(userRepo UserStore, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Register creates a new user account.
// The existence check and the insert are two separate store calls; a
// concurrent registration with the same email can slip between them, which
// the users collection's unique email index catches.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		OS:       req.OS,
	}

	_, err = s.userRepo.Create(ctx, user)
	return err
}

// Login authenticates a user and returns a session token
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwtManager.Generate(user.ID.Hex())
}
