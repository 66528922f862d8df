package postgres

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/digitalt3/lms-core-api/internal/models"
	"github.com/digitalt3/lms-core-api/internal/repositories"
)

type UserPostgreSQL struct {
	*baseRepository[models.User, *models.User]
}

func NewUserPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.UserRepository {
	return &UserPostgreSQL{
		baseRepository: newBaseRepository[models.User, *models.User](db, redisClient, "user:", "email",
			func(u *models.User) string { return u.Email }),
	}
}
