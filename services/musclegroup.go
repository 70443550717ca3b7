package services

import (
	"fitnessapi/logger"
	"fitnessapi/models"

	"gorm.io/gorm"
)

type MuscleGroupService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMuscleGroupService(db *gorm.DB, log *logger.Logger) *MuscleGroupService {
	return &MuscleGroupService{db: db, log: log}
}

// GetMuscleGroups returns the default muscle groups plus the user's own,
// ordered by id.
func (s *MuscleGroupService) GetMuscleGroups(userID string) ActionResult {
	var groups []models.MuscleGroup
	err := s.db.Where("user_id = ? OR user_id IS NULL", userID).
		Order("id").Find(&groups).Error
	if err != nil {
		s.log.Errorw("failed to fetch muscle groups", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	// Should not happen, the default groups are seeded on startup
	if len(groups) == 0 {
		return notFound(MsgNoMuscleGroups)
	}

	data := make([]interface{}, 0, len(groups))
	for _, g := range groups {
		data = append(data, toMuscleGroupModel(g))
	}
	return successList(data)
}
