package services

import (
	"context"
	"strings"

	"github.com/uniconnect/backend/internal/app/models"
	"github.com/uniconnect/backend/internal/app/models/dto"
	"github.com/uniconnect/backend/internal/app/repositories"
	"github.com/uniconnect/backend/internal/pkg/apperrors"
)

// EventService handles event operations
type EventService interface {
	Create(ctx context.Context, callerCollegeID int64, req *dto.CreateEventRequest) (*models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	List(ctx context.Context, filter dto.EventFilter) ([]*models.Event, error)
	ListByCollege(ctx context.Context, collegeID int64) ([]*models.Event, error)
	Update(ctx context.Context, id, callerCollegeID int64, updates *dto.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, id, callerCollegeID int64) error
}

type eventService struct {
	eventRepo repositories.IEventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo repositories.IEventRepository) EventService {
	return &eventService{
		eventRepo: eventRepo,
	}
}

// Create creates a new event owned by the calling college.
// The body's collegeId must match the caller's identity.
func (s *eventService) Create(ctx context.Context, callerCollegeID int64, req *dto.CreateEventRequest) (*models.Event, error) {
	if req.CollegeID != callerCollegeID {
		return nil, apperrors.ErrPermissionDenied
	}

	event := &models.Event{
		Title:            req.Title,
		Description:      req.Description,
		Type:             req.Type,
		Mode:             req.Mode,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Venue:            req.Venue,
		Address:          req.Address,
		RegistrationLink: req.RegistrationLink,
		ImageURL:         req.ImageURL,
		VideoURL:         req.VideoURL,
		CollegeID:        req.CollegeID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// GetByID retrieves an event by ID
func (s *eventService) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// List returns events matching the filter. The search term selects the
// substring-search path in the repository; type, mode and location then
// narrow the fetched list in-process, in that order.
func (s *eventService) List(ctx context.Context, filter dto.EventFilter) ([]*models.Event, error) {
	var events []*models.Event
	var err error

	if filter.Search != "" {
		events, err = s.eventRepo.Search(ctx, filter.Search)
	} else {
		events, err = s.eventRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if filter.Type != "" {
		events = narrow(events, func(e *models.Event) bool {
			return e.Type == filter.Type
		})
	}

	if filter.Mode != "" {
		events = narrow(events, func(e *models.Event) bool {
			return e.Mode == filter.Mode
		})
	}

	if filter.Location != "" {
		location := strings.ToLower(filter.Location)
		events = narrow(events, func(e *models.Event) bool {
			if strings.Contains(strings.ToLower(e.Venue), location) {
				return true
			}
			return e.Address != nil && strings.Contains(strings.ToLower(*e.Address), location)
		})
	}

	return events, nil
}

// narrow keeps the events satisfying the predicate, preserving order
func narrow(events []*models.Event, keep func(*models.Event) bool) []*models.Event {
	out := make([]*models.Event, 0, len(events))
	for _, e := range events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// ListByCollege retrieves all events for a college
func (s *eventService) ListByCollege(ctx context.Context, collegeID int64) ([]*models.Event, error) {
	return s.eventRepo.GetByCollegeID(ctx, collegeID)
}

// Update applies a partial update to an event owned by the calling college
func (s *eventService) Update(ctx context.Context, id, callerCollegeID int64, updates *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.CollegeID != callerCollegeID {
		return nil, apperrors.ErrPermissionDenied
	}

	return s.eventRepo.Update(ctx, id, updates)
}

// Delete removes an event owned by the calling college
func (s *eventService) Delete(ctx context.Context, id, callerCollegeID int64) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if event.CollegeID != callerCollegeID {
		return apperrors.ErrPermissionDenied
	}

	return s.eventRepo.Delete(ctx, id)
}
