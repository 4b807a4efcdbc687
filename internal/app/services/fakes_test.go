package services

import (
	"context"
	"strings"
	"time"

	"github.com/uniconnect/backend/internal/app/models"
	"github.com/uniconnect/backend/internal/app/models/dto"
	"github.com/uniconnect/backend/internal/pkg/apperrors"
)

// In-memory repository fakes shared by the service tests.

type fakeStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int64]*models.Student), nextID: 1}
}

func (r *fakeStudentRepo) Create(ctx context.Context, student *models.Student) error {
	for _, s := range r.students {
		if s.RegNumber == student.RegNumber {
			return apperrors.ErrRegNumberAlreadyTaken
		}
		if s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	student.ID = r.nextID
	r.nextID++
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (r *fakeStudentRepo) GetByRegNumber(ctx context.Context, regNumber string) (*models.Student, error) {
	for _, s := range r.students {
		if s.RegNumber == regNumber {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepo) RegNumberExists(ctx context.Context, regNumber string) (bool, error) {
	_, err := r.GetByRegNumber(ctx, regNumber)
	return err == nil, nil
}

func (r *fakeStudentRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, s := range r.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStudentRepo) Update(ctx context.Context, id int64, updates *dto.UpdateStudentRequest) (*models.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if updates.RegNumber != nil {
		s.RegNumber = *updates.RegNumber
	}
	if updates.Name != nil {
		s.Name = *updates.Name
	}
	if updates.Email != nil {
		s.Email = *updates.Email
	}
	if updates.CollegeName != nil {
		s.CollegeName = *updates.CollegeName
	}
	if updates.Location != nil {
		s.Location = *updates.Location
	}
	if updates.Password != nil {
		s.Password = *updates.Password
	}
	return s, nil
}

type fakeCollegeRepo struct {
	colleges map[int64]*models.College
	nextID   int64
}

func newFakeCollegeRepo() *fakeCollegeRepo {
	return &fakeCollegeRepo{colleges: make(map[int64]*models.College), nextID: 1}
}

func (r *fakeCollegeRepo) Create(ctx context.Context, college *models.College) error {
	for _, c := range r.colleges {
		if c.Code == college.Code {
			return apperrors.ErrCollegeCodeTaken
		}
		if c.Email == college.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	college.ID = r.nextID
	r.nextID++
	r.colleges[college.ID] = college
	return nil
}

func (r *fakeCollegeRepo) GetByID(ctx context.Context, id int64) (*models.College, error) {
	c, ok := r.colleges[id]
	if !ok {
		return nil, apperrors.ErrCollegeNotFound
	}
	return c, nil
}

func (r *fakeCollegeRepo) GetByCode(ctx context.Context, code string) (*models.College, error) {
	for _, c := range r.colleges {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, apperrors.ErrCollegeNotFound
}

func (r *fakeCollegeRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	_, err := r.GetByCode(ctx, code)
	return err == nil, nil
}

func (r *fakeCollegeRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, c := range r.colleges {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCollegeRepo) Update(ctx context.Context, id int64, updates *dto.UpdateCollegeRequest) (*models.College, error) {
	c, ok := r.colleges[id]
	if !ok {
		return nil, apperrors.ErrCollegeNotFound
	}
	if updates.Code != nil {
		c.Code = *updates.Code
	}
	if updates.Name != nil {
		c.Name = *updates.Name
	}
	if updates.Email != nil {
		c.Email = *updates.Email
	}
	if updates.Location != nil {
		c.Location = *updates.Location
	}
	if updates.Password != nil {
		c.Password = *updates.Password
	}
	return c, nil
}

type fakeEventRepo struct {
	events []*models.Event
	nextID int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{nextID: 1}
}

func (r *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	event.ID = r.nextID
	event.CreatedAt = time.Now()
	r.nextID++
	r.events = append(r.events, event)
	return nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

func (r *fakeEventRepo) GetAll(ctx context.Context) ([]*models.Event, error) {
	out := make([]*models.Event, len(r.events))
	copy(out, r.events)
	return out, nil
}

func (r *fakeEventRepo) GetByCollegeID(ctx context.Context, collegeID int64) ([]*models.Event, error) {
	var out []*models.Event
	for _, e := range r.events {
		if e.CollegeID == collegeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Search(ctx context.Context, query string) ([]*models.Event, error) {
	q := strings.ToLower(query)
	var out []*models.Event
	for _, e := range r.events {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(strings.ToLower(e.Type), q) ||
			strings.Contains(strings.ToLower(e.Venue), q) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Update(ctx context.Context, id int64, updates *dto.UpdateEventRequest) (*models.Event, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updates.Title != nil {
		e.Title = *updates.Title
	}
	if updates.Description != nil {
		e.Description = *updates.Description
	}
	if updates.Type != nil {
		e.Type = *updates.Type
	}
	if updates.Mode != nil {
		e.Mode = *updates.Mode
	}
	if updates.StartDate != nil {
		e.StartDate = *updates.StartDate
	}
	if updates.EndDate != nil {
		e.EndDate = updates.EndDate
	}
	if updates.StartTime != nil {
		e.StartTime = *updates.StartTime
	}
	if updates.EndTime != nil {
		e.EndTime = updates.EndTime
	}
	if updates.Venue != nil {
		e.Venue = *updates.Venue
	}
	if updates.Address != nil {
		e.Address = updates.Address
	}
	if updates.RegistrationLink != nil {
		e.RegistrationLink = *updates.RegistrationLink
	}
	if updates.ImageURL != nil {
		e.ImageURL = updates.ImageURL
	}
	if updates.VideoURL != nil {
		e.VideoURL = updates.VideoURL
	}
	return e, nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	for i, e := range r.events {
		if e.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrEventNotFound
}

type storedToken struct {
	accountID int64
	role      string
	expiry    time.Time
	revoked   bool
}

type fakeTokenRepo struct {
	tokens map[string]*storedToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*storedToken)}
}

func (r *fakeTokenRepo) CreateToken(ctx context.Context, token string, accountID int64, role string, expiryDate time.Time) error {
	r.tokens[token] = &storedToken{accountID: accountID, role: role, expiry: expiryDate}
	return nil
}

func (r *fakeTokenRepo) GetTokenByValue(ctx context.Context, token string) (int64, string, error) {
	t, ok := r.tokens[token]
	if !ok {
		return 0, "", apperrors.ErrTokenNotFound
	}
	if t.revoked {
		return 0, "", apperrors.ErrTokenRevoked
	}
	if time.Now().After(t.expiry) {
		return 0, "", apperrors.ErrTokenExpired
	}
	return t.accountID, t.role, nil
}

func (r *fakeTokenRepo) RevokeToken(ctx context.Context, token string) error {
	t, ok := r.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	t.revoked = true
	return nil
}

func (r *fakeTokenRepo) RevokeAllAccountTokens(ctx context.Context, accountID int64, role string) error {
	for _, t := range r.tokens {
		if t.accountID == accountID && t.role == role {
			t.revoked = true
		}
	}
	return nil
}

func (r *fakeTokenRepo) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	var removed int64
	for token, t := range r.tokens {
		if time.Now().After(t.expiry) {
			delete(r.tokens, token)
			removed++
		}
	}
	return removed, nil
}
