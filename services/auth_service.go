package services

import (
	"chat-relay/auth"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	stderrors "errors"
	"fmt"
)

type IAuthService interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Register(ctx context.Context, email, username, password string) (Session, error)
}

type TokenGenerator interface {
	GenerateToken(user domain.User) (string, error)
}

// Session is what a client receives after a successful register or login.
type Session struct {
	Token string             `json:"token"`
	User  domain.UserSummary `json:"user"`
}

type AuthService struct {
	userRepository contract.IUserStore
	tokens         TokenGenerator
}

func NewAuthService(repo contract.IUserStore, tokens TokenGenerator) *AuthService {
	return &AuthService{userRepository: repo, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, email, username, password string) (Session, error) {
	// 1. Business rules first, before any expensive hashing
	if err := auth.ValidateRegister(auth.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	}); err != nil {
		if stderrors.Is(err, errors.ErrInvalidPassword) {
			return Session{}, err
		}
		return Session{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}

	// 2. The repository never sees plain passwords
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	// 3. ErrUserAlreadyExists propagates as is
	user, err := s.userRepository.CreateUser(ctx, email, username, hashedPassword)
	if err != nil {
		return Session{}, err
	}

	return s.session(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	if err := auth.ValidateLogin(auth.LoginRequest{Email: email, Password: password}); err != nil {
		return Session{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}

	// Same error for unknown email and wrong password, no user enumeration
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return Session{}, errors.ErrInvalidCredentials
	}
	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}

	return s.session(user)
}

func (s *AuthService) session(user domain.User) (Session, error) {
	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}
	return Session{Token: token, User: user.Summary()}, nil
}
