package account

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/vovakirdan/mazechase/internal/storage"
)

// Repository persists accounts. *storage.Store implements it.
type Repository interface {
	CreateUser(username, passwordHash string) error
	UserByName(username string) (*storage.User, error)
}

// Option configures a Service.
type Option func(*Service)

// WithHashCost sets the bcrypt cost used for new passwords.
func WithHashCost(cost int) Option {
	return func(s *Service) {
		s.cost = cost
	}
}

// WithLogger sets the service logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// Service registers and authenticates players.
type Service struct {
	repo   Repository
	cost   int
	logger *log.Logger
}

// NewService creates a Service on top of repo.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		cost:   bcrypt.DefaultCost,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates and stores a new account.
func (s *Service) Register(username, password string) (*User, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(username, password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password, s.cost)
	if err != nil {
		return nil, fmt.Errorf("account: hash password: %w", err)
	}

	if err := s.repo.CreateUser(username, hash); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("account: register %s: %w", username, err)
	}

	s.logger.Info("user registered", "user", username)
	return &User{Username: username}, nil
}

// Login checks the password and returns the account with its best score.
func (s *Service) Login(username, password string) (*User, error) {
	u, err := s.repo.UserByName(username)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Debug("login for unknown user", "user", username)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("account: login %s: %w", username, err)
	}

	if !verifyPassword(u.PasswordHash, password) {
		s.logger.Warn("login failed", "user", username)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("user logged in", "user", username)
	return &User{Username: u.Username, BestScore: u.BestScore}, nil
}
