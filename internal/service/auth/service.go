package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nagi609/Clinic-Management-System/internal/email"
	"github.com/Nagi609/Clinic-Management-System/internal/model"
	"github.com/Nagi609/Clinic-Management-System/internal/repository"
	"github.com/Nagi609/Clinic-Management-System/internal/service/sequence"
	"github.com/Nagi609/Clinic-Management-System/pkg/apperror"
	"github.com/Nagi609/Clinic-Management-System/pkg/authn"
)

const bcryptCost = 12

type AuthService interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error)
	CheckUsername(ctx context.Context, username string) (bool, error)
	ValidateToken(token string) (*authn.Claims, error)
}

type Service struct {
	userRepo repository.UserRepository
	tokens   *authn.Service
	emailSvc email.Service
}

func NewService(userRepo repository.UserRepository, tokens *authn.Service, emailSvc email.Service) *Service {
	return &Service{userRepo: userRepo, tokens: tokens, emailSvc: emailSvc}
}

func (s *Service) Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, apperror.Validation("Username already taken")
	}
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperror.Validation("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	used, err := s.userRepo.ListNumericIDs(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to allocate numeric ID: %w", err))
	}

	user := &model.User{
		Base:         model.Base{ID: uuid.New()},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         string(model.UserRoleAdmin),
		NumericID:    sequence.Next(used),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to create user: %w", err))
	}

	if s.emailSvc != nil {
		if err := s.emailSvc.SendWelcome(ctx, user.Email, user.FullName); err != nil {
			log.Warn().Err(err).Str("email", user.Email).Msg("failed to send welcome email")
		}
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	// The same message covers an unknown account and a wrong password so
	// the response does not reveal which part failed.
	user, err := s.userRepo.GetByUsernameOrEmail(ctx, req.UsernameOrEmail)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid username/email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("Invalid username/email or password")
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to generate token: %w", err))
	}

	return &model.TokenResponse{Token: token, User: user}, nil
}

func (s *Service) CheckUsername(ctx context.Context, username string) (bool, error) {
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return false, nil
	}
	return true, nil
}

func (s *Service) ValidateToken(token string) (*authn.Claims, error) {
	return s.tokens.Validate(token)
}
