package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/uniconnect/backend/internal/app/models"
	"github.com/uniconnect/backend/internal/app/models/dto"
	"github.com/uniconnect/backend/internal/app/repositories"
	"github.com/uniconnect/backend/internal/pkg/apperrors"
	"github.com/uniconnect/backend/internal/pkg/auth"
)

// CollegeService handles college account operations
type CollegeService interface {
	Register(ctx context.Context, req *dto.RegisterCollegeRequest) (*models.College, error)
	Login(ctx context.Context, req *dto.CollegeLoginRequest) (*dto.CollegeAuthResponse, error)
	GetByID(ctx context.Context, id int64) (*models.College, error)
	Update(ctx context.Context, id int64, updates *dto.UpdateCollegeRequest) (*models.College, error)
}

type collegeService struct {
	collegeRepo repositories.ICollegeRepository
	authService AuthService
}

// NewCollegeService creates a new college service
func NewCollegeService(collegeRepo repositories.ICollegeRepository, authService AuthService) CollegeService {
	return &collegeService{
		collegeRepo: collegeRepo,
		authService: authService,
	}
}

// Register creates a new college account with sequential uniqueness pre-checks
func (s *collegeService) Register(ctx context.Context, req *dto.RegisterCollegeRequest) (*models.College, error) {
	exists, err := s.collegeRepo.CodeExists(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("error checking university code: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCollegeCodeTaken
	}

	exists, err = s.collegeRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	college := &models.College{
		Code:     req.Code,
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
		Password: hashedPassword,
	}

	if err := s.collegeRepo.Create(ctx, college); err != nil {
		return nil, err
	}

	return college, nil
}

// Login authenticates a college by university code and password
func (s *collegeService) Login(ctx context.Context, req *dto.CollegeLoginRequest) (*dto.CollegeAuthResponse, error) {
	college, err := s.collegeRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, apperrors.ErrCollegeNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(college.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.authService.IssueTokens(ctx, college.ID, auth.RoleCollege)
	if err != nil {
		return nil, err
	}

	return &dto.CollegeAuthResponse{
		College: college,
		Token:   *token,
	}, nil
}

// GetByID retrieves a college by ID
func (s *collegeService) GetByID(ctx context.Context, id int64) (*models.College, error) {
	return s.collegeRepo.GetByID(ctx, id)
}

// Update applies a partial profile update. A supplied password is re-hashed.
func (s *collegeService) Update(ctx context.Context, id int64, updates *dto.UpdateCollegeRequest) (*models.College, error) {
	if updates.Password != nil {
		hashed, err := auth.HashPassword(*updates.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		updates.Password = &hashed
	}

	return s.collegeRepo.Update(ctx, id, updates)
}
