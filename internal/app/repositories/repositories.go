package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	CollegeRepository *CollegeRepository
	EventRepository   *EventRepository
	TokenRepository   *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		CollegeRepository: NewCollegeRepository(db),
		EventRepository:   NewEventRepository(db),
		TokenRepository:   NewTokenRepository(db),
	}
}
