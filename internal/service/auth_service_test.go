package service

import (
	"context"
	"testing"
	"time"

	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/model"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// stubUserStore keeps users in a map keyed by email
type stubUserStore struct {
	users map[string]*model.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: map[string]*model.User{}}
}

func (s *stubUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return s.users[email], nil
}

func (s *stubUserStore) Create(_ context.Context, user *model.User) (string, error) {
	user.ID = primitive.NewObjectID()
	s.users[user.Email] = user
	return user.ID.Hex(), nil
}

func newTestAuthService() (*AuthService, *stubUserStore) {
	store := newStubUserStore()
	return NewAuthService(store, auth.NewJWTManager("test-secret", time.Hour)), store
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	req := model.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"}

	require.NoError(t, svc.Register(context.Background(), req))

	err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, store := newTestAuthService()

	err := svc.Register(context.Background(), model.RegisterRequest{
		Name: "Bob", Email: "bob@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	stored := store.users["bob@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	require.NoError(t, svc.Register(context.Background(), model.RegisterRequest{
		Name: "Carol", Email: "carol@example.com", Password: "correct-horse",
	}))

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email: "carol@example.com", Password: "battery-staple",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	svc, store := newTestAuthService()
	require.NoError(t, svc.Register(context.Background(), model.RegisterRequest{
		Name: "Dave", Email: "dave@example.com", Password: "secret-pw",
	}))

	token, err := svc.Login(context.Background(), model.LoginRequest{
		Email: "dave@example.com", Password: "secret-pw",
	})
	require.NoError(t, err)

	userID, err := auth.NewJWTManager("test-secret", time.Hour).Validate(token)
	require.NoError(t, err)
	assert.Equal(t, store.users["dave@example.com"].ID.Hex(), userID)
}
