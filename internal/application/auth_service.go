package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quillpress/quillpress/internal/apperr"
	"github.com/quillpress/quillpress/internal/domain/entity"
	"github.com/quillpress/quillpress/internal/domain/repository"
	"github.com/quillpress/quillpress/pkg/helpers"
	"github.com/quillpress/quillpress/pkg/mailer"
)

// EmailPublisher enqueues email jobs; satisfied by helpers.RabbitPublisher.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AuthService registers users, authenticates logins, and issues tokens.
type AuthService struct {
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
	Pub     EmailPublisher
	Logger  *logrus.Logger
	AppName string
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, pub EmailPublisher, logger *logrus.Logger, appName string) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Pub: pub, Logger: logger, AppName: appName}
}

// AuthResult carries the issued token alongside the user.
type AuthResult struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// Register creates a user, hashing the password before it ever reaches the
// store, and issues a token. A duplicate email surfaces as a validation
// failure. The welcome email is best effort and never fails the request.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Name: name, Email: email, Password: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.New(apperr.Validation, "email already registered")
		}
		return nil, err
	}

	token, exp, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		return nil, err
	}

	if s.Pub != nil {
		job := mailer.EmailJob{
			To:       u.Email,
			Template: mailer.TemplateWelcome,
			Data:     map[string]string{"Name": u.Name, "Email": u.Email, "AppName": s.AppName},
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
		}
	}

	return &AuthResult{User: u, Token: token, ExpiresAt: exp}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error, so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperr.New(apperr.InvalidCredentials, "incorrect email or password")
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, apperr.New(apperr.InvalidCredentials, "incorrect email or password")
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, apperr.New(apperr.InvalidCredentials, "incorrect email or password")
	}

	token, exp, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Token: token, ExpiresAt: exp}, nil
}
