package service

import (
	"context"
	"errors"
	"os"
	"time"

	"classrecord-be/internal/dto"
	"classrecord-be/internal/entity"
	"classrecord-be/internal/pkg/logger"
	"classrecord-be/internal/pkg/mailer"
	"classrecord-be/internal/repository/memory"
	"classrecord-be/internal/repository/specification"
	"classrecord-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	Logout(ctx context.Context, userId uuid.UUID) error
}

type authService struct {
	uowFactory    unitofwork.RepositoryFactory
	emailService  mailer.IEmailService
	sessionRepo   *memory.SessionRepository
	logger        logger.ILogger
	tokenTTLHours int
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	sessionRepo *memory.SessionRepository,
	log logger.ILogger,
	tokenTTLHours int,
) IAuthService {
	return &authService{
		uowFactory:    uowFactory,
		emailService:  emailService,
		sessionRepo:   sessionRepo,
		logger:        log,
		tokenTTLHours: tokenTTLHours,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	// Welcome mail is auxiliary; the registration never fails on it.
	go func(email, name string) {
		if err := s.emailService.SendWelcome(email, name); err != nil {
			s.logger.Warn("auth", "welcome email failed", map[string]interface{}{
				"email": email,
				"error": err.Error(),
			})
		}
	}(user.Email, user.FullName)

	s.logger.Info("auth", "user registered", map[string]interface{}{"user_id": user.Id.String()})

	return &dto.RegisterResponse{Id: user.Id}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(time.Duration(s.tokenTTLHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: signed}, nil
}

func (s *authService) Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	return &dto.UserProfileResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Logout drops the conversation session so the assistant starts the
// next login idle, with no half-finished dialogue.
func (s *authService) Logout(ctx context.Context, userId uuid.UUID) error {
	s.sessionRepo.Delete(userId.String())
	return nil
}
