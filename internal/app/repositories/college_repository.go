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

// ICollegeRepository defines college persistence operations
type ICollegeRepository interface {
	Create(ctx context.Context, college *models.College) error
	GetByID(ctx context.Context, id int64) (*models.College, error)
	GetByCode(ctx context.Context, code string) (*models.College, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id int64, updates *dto.UpdateCollegeRequest) (*models.College, error)
}

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const collegeColumns = "id, code, name, email, location, password"

func scanCollege(row pgx.Row) (*models.College, error) {
	var college models.College
	err := row.Scan(
		&college.ID,
		&college.Code,
		&college.Name,
		&college.Email,
		&college.Location,
		&college.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error scanning college row: %w", err)
	}
	return &college, nil
}

// Create inserts a new college and fills in the generated id
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	query := `
		INSERT INTO colleges (code, name, email, location, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		college.Code, college.Name, college.Email, college.Location, college.Password,
	).Scan(&college.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "colleges_code_key") {
			return apperrors.ErrCollegeCodeTaken
		}
		if dberrors.IsDuplicateConstraintError(err, "colleges_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("code", college.Code).Msg("Error executing create college query")
		return fmt.Errorf("error creating college: %w", err)
	}

	return nil
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	query := fmt.Sprintf(`SELECT %s FROM colleges WHERE id = $1`, collegeColumns)
	return scanCollege(r.db.QueryRow(ctx, query, id))
}

// GetByCode retrieves a college by university code
func (r *CollegeRepository) GetByCode(ctx context.Context, code string) (*models.College, error) {
	query := fmt.Sprintf(`SELECT %s FROM colleges WHERE code = $1`, collegeColumns)
	return scanCollege(r.db.QueryRow(ctx, query, code))
}

// CodeExists checks if a university code is already taken
func (r *CollegeRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM colleges WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking college code existence: %w", err)
	}
	return exists, nil
}

// EmailExists checks if a college email is already taken
func (r *CollegeRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM colleges WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking college email existence: %w", err)
	}
	return exists, nil
}

// Update applies a partial field set and returns the updated row
func (r *CollegeRepository) Update(ctx context.Context, id int64, updates *dto.UpdateCollegeRequest) (*models.College, error) {
	builder := r.sb.Update("colleges")

	if updates.Code != nil {
		builder = builder.Set("code", *updates.Code)
	}
	if updates.Name != nil {
		builder = builder.Set("name", *updates.Name)
	}
	if updates.Email != nil {
		builder = builder.Set("email", *updates.Email)
	}
	if updates.Location != nil {
		builder = builder.Set("location", *updates.Location)
	}
	if updates.Password != nil {
		builder = builder.Set("password", *updates.Password)
	}

	sql, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + collegeColumns).
		ToSql()
	if err != nil {
		// An empty partial update is a no-op read
		return r.GetByID(ctx, id)
	}

	college, err := scanCollege(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "colleges_code_key") {
			return nil, apperrors.ErrCollegeCodeTaken
		}
		if dberrors.IsDuplicateConstraintError(err, "colleges_email_key") {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return college, nil
}
