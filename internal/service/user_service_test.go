package service

import (
	"context"
	"testing"

	"moodrealm/internal/models"
	"moodrealm/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Signup(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	svc.bcryptCost = bcrypt.MinCost
	ctx := context.Background()

	user, err := svc.Signup(ctx, SignupInput{Name: " Alice ", Email: "Alice@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))

	tests := []struct {
		name    string
		in      SignupInput
		wantMsg string
	}{
		{"Missing Fields", SignupInput{Email: "bob@example.com", Password: "secret1"}, "All fields are required"},
		{"Bad Email", SignupInput{Name: "Bob", Email: "bob", Password: "secret1"}, "Please include a valid email"},
		{"Short Password", SignupInput{Name: "Bob", Email: "bob@example.com", Password: "12345"}, "Password must be 6 or more characters"},
		{"Duplicate Email", SignupInput{Name: "Other", Email: "ALICE@example.com", Password: "secret1"}, "User already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tt.in)
			assert.Equal(t, 400, models.StatusCode(err))
			assert.Equal(t, tt.wantMsg, models.PublicMessage(err))
		})
	}
}

func TestUserService_Login(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	svc.bcryptCost = bcrypt.MinCost
	ctx := context.Background()

	created, err := svc.Signup(ctx, SignupInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, "ALICE@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	assert.Equal(t, 401, models.StatusCode(err))
	assert.Equal(t, "Invalid email or password", models.PublicMessage(err))

	_, err = svc.Login(ctx, "nobody@example.com", "secret1")
	assert.Equal(t, "Invalid email or password", models.PublicMessage(err))

	_, err = svc.Login(ctx, "alice@example.com", "")
	assert.Equal(t, 400, models.StatusCode(err))

	got, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}
