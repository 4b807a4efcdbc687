package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uniconnect/backend/internal/app/models"
	"github.com/uniconnect/backend/internal/app/models/dto"
	"github.com/uniconnect/backend/internal/pkg/apperrors"
	"github.com/uniconnect/backend/internal/pkg/logger"
)

// IEventRepository defines event persistence operations
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context) ([]*models.Event, error)
	GetByCollegeID(ctx context.Context, collegeID int64) ([]*models.Event, error)
	Search(ctx context.Context, query string) ([]*models.Event, error)
	Update(ctx context.Context, id int64, updates *dto.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var eventColumns = []string{
	"id", "title", "description", "type", "mode",
	"start_date", "end_date", "start_time", "end_time",
	"venue", "address", "registration_link", "image_url", "video_url",
	"college_id", "created_at",
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Type,
		&event.Mode,
		&event.StartDate,
		&event.EndDate,
		&event.StartTime,
		&event.EndTime,
		&event.Venue,
		&event.Address,
		&event.RegistrationLink,
		&event.ImageURL,
		&event.VideoURL,
		&event.CollegeID,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error scanning event row: %w", err)
	}
	return &event, nil
}

// selectEventsQuery builds the base SELECT ordered by ascending start date
func (r *EventRepository) selectEventsQuery() squirrel.SelectBuilder {
	return r.sb.Select(eventColumns...).
		From("events").
		OrderBy("start_date ASC", "id ASC")
}

func (r *EventRepository) queryEvents(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Event, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building events SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Create inserts a new event and fills in the generated id and createdAt
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	sql, args, err := r.sb.Insert("events").
		Columns("title", "description", "type", "mode",
			"start_date", "end_date", "start_time", "end_time",
			"venue", "address", "registration_link", "image_url", "video_url",
			"college_id").
		Values(event.Title, event.Description, event.Type, event.Mode,
			event.StartDate, event.EndDate, event.StartTime, event.EndTime,
			event.Venue, event.Address, event.RegistrationLink, event.ImageURL, event.VideoURL,
			event.CollegeID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create event SQL")
		return err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Str("title", event.Title).Msg("Error executing create event query")
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	return scanEvent(r.db.QueryRow(ctx, sql, args...))
}

// GetAll retrieves all events ordered by ascending start date
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	return r.queryEvents(ctx, r.selectEventsQuery())
}

// GetByCollegeID retrieves all events for a college, same ordering as GetAll
func (r *EventRepository) GetByCollegeID(ctx context.Context, collegeID int64) ([]*models.Event, error) {
	return r.queryEvents(ctx, r.selectEventsQuery().Where(squirrel.Eq{"college_id": collegeID}))
}

// Search performs a case-insensitive substring match across the event
// text columns, OR-combined, same ordering as GetAll
func (r *EventRepository) Search(ctx context.Context, query string) ([]*models.Event, error) {
	pattern := "%" + query + "%"
	builder := r.selectEventsQuery().Where(squirrel.Or{
		squirrel.ILike{"title": pattern},
		squirrel.ILike{"description": pattern},
		squirrel.ILike{"type": pattern},
		squirrel.ILike{"venue": pattern},
	})
	return r.queryEvents(ctx, builder)
}

// Update applies a partial field set and returns the updated row
func (r *EventRepository) Update(ctx context.Context, id int64, updates *dto.UpdateEventRequest) (*models.Event, error) {
	builder := r.sb.Update("events")

	if updates.Title != nil {
		builder = builder.Set("title", *updates.Title)
	}
	if updates.Description != nil {
		builder = builder.Set("description", *updates.Description)
	}
	if updates.Type != nil {
		builder = builder.Set("type", *updates.Type)
	}
	if updates.Mode != nil {
		builder = builder.Set("mode", *updates.Mode)
	}
	if updates.StartDate != nil {
		builder = builder.Set("start_date", *updates.StartDate)
	}
	if updates.EndDate != nil {
		builder = builder.Set("end_date", *updates.EndDate)
	}
	if updates.StartTime != nil {
		builder = builder.Set("start_time", *updates.StartTime)
	}
	if updates.EndTime != nil {
		builder = builder.Set("end_time", *updates.EndTime)
	}
	if updates.Venue != nil {
		builder = builder.Set("venue", *updates.Venue)
	}
	if updates.Address != nil {
		builder = builder.Set("address", *updates.Address)
	}
	if updates.RegistrationLink != nil {
		builder = builder.Set("registration_link", *updates.RegistrationLink)
	}
	if updates.ImageURL != nil {
		builder = builder.Set("image_url", *updates.ImageURL)
	}
	if updates.VideoURL != nil {
		builder = builder.Set("video_url", *updates.VideoURL)
	}

	sql, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(eventColumns, ", ")).
		ToSql()
	if err != nil {
		// An empty partial update is a no-op read
		return r.GetByID(ctx, id)
	}

	return scanEvent(r.db.QueryRow(ctx, sql, args...))
}

// Delete removes an event by ID
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
