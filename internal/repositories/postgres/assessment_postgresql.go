package postgres

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/digitalt3/lms-core-api/internal/models"
	"github.com/digitalt3/lms-core-api/internal/repositories"
)

type AssessmentPostgreSQL struct {
	*baseRepository[models.Assessment, *models.Assessment]
}

// Assessments declare no unique field, so the uniqueness pre-check is
// disabled for them.
func NewAssessmentPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.AssessmentRepository {
	return &AssessmentPostgreSQL{
		baseRepository: newBaseRepository[models.Assessment, *models.Assessment](db, redisClient, "assessment:", "", nil),
	}
}
