package postgres

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/digitalt3/lms-core-api/internal/models"
	"github.com/digitalt3/lms-core-api/internal/repositories"
)

type ContentPostgreSQL struct {
	*baseRepository[models.Content, *models.Content]
}

func NewContentPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.ContentRepository {
	return &ContentPostgreSQL{
		baseRepository: newBaseRepository[models.Content, *models.Content](db, redisClient, "content:", "slug",
			func(c *models.Content) string { return c.Slug }),
	}
}
