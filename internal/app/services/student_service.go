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

// StudentService handles student account operations
type StudentService interface {
	Register(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error)
	Login(ctx context.Context, req *dto.StudentLoginRequest) (*dto.StudentAuthResponse, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Update(ctx context.Context, id int64, updates *dto.UpdateStudentRequest) (*models.Student, error)
}

type studentService struct {
	studentRepo repositories.IStudentRepository
	authService AuthService
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repositories.IStudentRepository, authService AuthService) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		authService: authService,
	}
}

// Register creates a new student account.
// Uniqueness is pre-checked sequentially; the insert itself is the
// backstop for the race between the checks and the commit.
func (s *studentService) Register(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	exists, err := s.studentRepo.RegNumberExists(ctx, req.RegNumber)
	if err != nil {
		return nil, fmt.Errorf("error checking registration number: %w", err)
	}
	if exists {
		return nil, apperrors.ErrRegNumberAlreadyTaken
	}

	exists, err = s.studentRepo.EmailExists(ctx, req.Email)
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

	student := &models.Student{
		RegNumber:   req.RegNumber,
		Name:        req.Name,
		Email:       req.Email,
		CollegeName: req.CollegeName,
		Location:    req.Location,
		Password:    hashedPassword,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Login authenticates a student by registration number and password
func (s *studentService) Login(ctx context.Context, req *dto.StudentLoginRequest) (*dto.StudentAuthResponse, error) {
	student, err := s.studentRepo.GetByRegNumber(ctx, req.RegNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.authService.IssueTokens(ctx, student.ID, auth.RoleStudent)
	if err != nil {
		return nil, err
	}

	return &dto.StudentAuthResponse{
		Student: student,
		Token:   *token,
	}, nil
}

// GetByID retrieves a student by ID
func (s *studentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// Update applies a partial profile update. A supplied password is re-hashed.
func (s *studentService) Update(ctx context.Context, id int64, updates *dto.UpdateStudentRequest) (*models.Student, error) {
	if updates.Password != nil {
		hashed, err := auth.HashPassword(*updates.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		updates.Password = &hashed
	}

	return s.studentRepo.Update(ctx, id, updates)
}
