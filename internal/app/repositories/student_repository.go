package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uniconnect/backend/internal/app/models"
	"github.com/uniconnect/backend/internal/app/models/dto"
	"github.com/uniconnect/backend/internal/pkg/apperrors"
	"github.com/uniconnect/backend/internal/pkg/dberrors"
	"github.com/uniconnect/backend/internal/pkg/logger"
)

// IStudentRepository defines student persistence operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByRegNumber(ctx context.Context, regNumber string) (*models.Student, error)
	RegNumberExists(ctx context.Context, regNumber string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id int64, updates *dto.UpdateStudentRequest) (*models.Student, error)
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentColumns = "id, reg_number, name, email, college_name, location, password"

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.RegNumber,
		&student.Name,
		&student.Email,
		&student.CollegeName,
		&student.Location,
		&student.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student row: %w", err)
	}
	return &student, nil
}

// Create inserts a new student and fills in the generated id
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (reg_number, name, email, college_name, location, password)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.RegNumber, student.Name, student.Email,
		student.CollegeName, student.Location, student.Password,
	).Scan(&student.ID)
	if err != nil {
		// The check-then-insert race surfaces here as a unique violation
		if dberrors.IsDuplicateConstraintError(err, "students_reg_number_key") {
			return apperrors.ErrRegNumberAlreadyTaken
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("regNumber", student.RegNumber).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1`, studentColumns)
	return scanStudent(r.db.QueryRow(ctx, query, id))
}

// GetByRegNumber retrieves a student by registration number
func (r *StudentRepository) GetByRegNumber(ctx context.Context, regNumber string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE reg_number = $1`, studentColumns)
	return scanStudent(r.db.QueryRow(ctx, query, regNumber))
}

// RegNumberExists checks if a registration number is already taken
func (r *StudentRepository) RegNumberExists(ctx context.Context, regNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE reg_number = $1)`, regNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking registration number existence: %w", err)
	}
	return exists, nil
}

// EmailExists checks if a student email is already taken
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student email existence: %w", err)
	}
	return exists, nil
}

// Update applies a partial field set and returns the updated row
func (r *StudentRepository) Update(ctx context.Context, id int64, updates *dto.UpdateStudentRequest) (*models.Student, error) {
	builder := r.sb.Update("students")

	if updates.RegNumber != nil {
		builder = builder.Set("reg_number", *updates.RegNumber)
	}
	if updates.Name != nil {
		builder = builder.Set("name", *updates.Name)
	}
	if updates.Email != nil {
		builder = builder.Set("email", *updates.Email)
	}
	if updates.CollegeName != nil {
		builder = builder.Set("college_name", *updates.CollegeName)
	}
	if updates.Location != nil {
		builder = builder.Set("location", *updates.Location)
	}
	if updates.Password != nil {
		builder = builder.Set("password", *updates.Password)
	}

	sql, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + studentColumns).
		ToSql()
	if err != nil {
		// Squirrel rejects an UPDATE with no SET clauses; an empty
		// partial update is a no-op read instead.
		return r.GetByID(ctx, id)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_reg_number_key") {
			return nil, apperrors.ErrRegNumberAlreadyTaken
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return student, nil
}
