package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillpress/quillpress/internal/apperr"
	"github.com/quillpress/quillpress/pkg/helpers"
	"github.com/quillpress/quillpress/pkg/mailer"
)

type capturePublisher struct {
	jobs []mailer.EmailJob
}

func (p *capturePublisher) PublishJSON(_ context.Context, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	var job mailer.EmailJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return err
	}
	p.jobs = append(p.jobs, job)
	return nil
}

func newAuthServiceFixture() (*AuthService, *fakeUserRepo, *capturePublisher) {
	users := newFakeUserRepo()
	pub := &capturePublisher{}
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(users, jwt, pub, nil, "QuillPress"), users, pub
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and issues token", func(t *testing.T) {
		svc, users, pub := newAuthServiceFixture()

		res, err := svc.Register(ctx, "Ada", "ada@example.com", "secret123")
		require.NoError(t, err)
		require.NotNil(t, res.User)
		assert.NotEmpty(t, res.User.ID)
		assert.NotEmpty(t, res.Token)
		assert.True(t, res.ExpiresAt.After(time.Now()))

		stored, err := users.GetByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", stored.Password, "password is stored hashed")
		assert.True(t, helpers.CompareHashAndPassword(stored.Password, "secret123"))

		claims, err := svc.JWT.ParseToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, res.User.ID, claims.Subject)

		require.Len(t, pub.jobs, 1)
		assert.Equal(t, "ada@example.com", pub.jobs[0].To)
		assert.Equal(t, mailer.TemplateWelcome, pub.jobs[0].Template)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, _, _ := newAuthServiceFixture()

		_, err := svc.Register(ctx, "Ada", "ada@example.com", "secret123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "Impostor", "ADA@example.com", "other456")
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.Validation))
		assert.EqualError(t, err, "email already registered")
	})

	t.Run("no publisher configured", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := NewAuthService(users, helpers.NewJWTManager("test-secret", time.Hour), nil, nil, "QuillPress")

		_, err := svc.Register(ctx, "Ada", "ada@example.com", "secret123")
		assert.NoError(t, err)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthServiceFixture()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := svc.Login(ctx, "ada@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", res.User.Email)

		claims, err := svc.JWT.ParseToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, res.User.ID, claims.Subject)
	})

	t.Run("failures are indistinguishable", func(t *testing.T) {
		cases := []struct {
			name            string
			email, password string
		}{
			{"unknown email", "nobody@example.com", "secret123"},
			{"wrong password", "ada@example.com", "wrong-pass"},
			{"empty email", "", "secret123"},
			{"empty password", "ada@example.com", ""},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Login(ctx, tc.email, tc.password)
				require.Error(t, err)
				assert.True(t, apperr.IsKind(err, apperr.InvalidCredentials))
				assert.EqualError(t, err, "incorrect email or password")
			})
		}
	})
}
