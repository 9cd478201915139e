package repositories

import (
	"github.com/petmily/petmily-api/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository                 *UserRepository
	TokenRepository                *TokenRepository
	VolunteerRepository            *VolunteerRepository
	VolunteerParticipantRepository *VolunteerParticipantRepository
	RestaurantRepository           *RestaurantRepository
	PostRepository                 *PostRepository
	AttendanceRepository           *AttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:                 NewUserRepository(database.Pool),
		TokenRepository:                NewTokenRepository(database.Pool),
		VolunteerRepository:            NewVolunteerRepository(database),
		VolunteerParticipantRepository: NewVolunteerParticipantRepository(database),
		RestaurantRepository:           NewRestaurantRepository(database.Pool),
		PostRepository:                 NewPostRepository(database.Pool),
		AttendanceRepository:           NewAttendanceRepository(database.Pool),
	}
}
