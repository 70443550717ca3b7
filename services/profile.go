package services

import (
	"errors"

	"fitnessapi/logger"
	"fitnessapi/models"

	"gorm.io/gorm"
)

// UserProfileService implements profile updates and the per-user exercise
// default values.
type UserProfileService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserProfileService(db *gorm.DB, log *logger.Logger) *UserProfileService {
	return &UserProfileService{db: db, log: log}
}

// UpdateUserProfile overwrites the display name and profile image.
func (s *UserProfileService) UpdateUserProfile(data UserModel) ActionResult {
	if err := data.Validate(); err != nil {
		return badRequest(err.Error())
	}

	var profile models.UserProfile
	err := s.db.Where("user_id = ?", data.ID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgProfileNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch user profile", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	profile.FullName = data.FullName
	profile.ProfileImage = decodeImage(data.ProfileImage)

	if err := s.db.Save(&profile).Error; err != nil {
		s.log.Errorw("failed to update user profile", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgProfileUpdated, data)
}

// GetDefaultValues returns the exercise specific defaults, falling back to
// the user-wide row. The model is always returned with the requested
// mgExerciseID so the client knows which exercise it is editing.
func (s *UserProfileService) GetDefaultValues(mgExerciseID uint, userID string) ActionResult {
	values, err := s.findDefaultValues(mgExerciseID, userID)
	if err != nil {
		return notFound(MsgDefValuesNotFound)
	}

	unit := s.weightUnitFor(values.WeightUnitID)
	model := toUserDefaultValuesModel(*values, unit)
	model.MGExerciseID = mgExerciseID

	return success(MsgSuccess, model)
}

// UpdateDefaultValues updates the matching row, or creates an exercise
// specific one when only the user-wide fallback exists. Changing the weight
// unit propagates it to all the user's exercise specific rows.
func (s *UserProfileService) UpdateDefaultValues(data UserDefaultValuesModel, userID string) ActionResult {
	existing, err := s.findDefaultValues(data.MGExerciseID, userID)
	if err != nil {
		return notFound(MsgDefValuesUpdateFail)
	}

	if existing.MGExerciseID == 0 && data.MGExerciseID > 0 {
		// Only the user-wide fallback exists, create the exercise row
		values := models.UserDefaultValue{
			UserID:       userID,
			MGExerciseID: data.MGExerciseID,
			Sets:         data.Sets,
			Reps:         data.Reps,
			Weight:       data.Weight,
			Rest:         data.Rest,
			Completed:    data.Completed,
			WeightUnitID: data.WeightUnit.ID,
		}
		if err := s.db.Create(&values).Error; err != nil {
			s.log.Errorw("failed to create default values", "error", err)
			return unexpectedError(MsgUnexpectedError)
		}
		unit := s.weightUnitFor(values.WeightUnitID)
		return created(MsgDefValuesUpdated, toUserDefaultValuesModel(values, unit))
	}

	unitID := existing.WeightUnitID
	var unitRecord models.WeightUnit
	if err := s.db.First(&unitRecord, "id = ?", data.WeightUnit.ID).Error; err == nil {
		unitID = unitRecord.ID
	}
	oldUnitID := existing.WeightUnitID

	existing.Sets = data.Sets
	existing.Reps = data.Reps
	existing.Weight = data.Weight
	existing.Rest = data.Rest
	existing.Completed = data.Completed
	existing.WeightUnitID = unitID

	if err := s.db.Save(existing).Error; err != nil {
		s.log.Errorw("failed to update default values", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	if oldUnitID != unitID {
		err := s.db.Model(&models.UserDefaultValue{}).
			Where("user_id = ? AND mg_exercise_id > 0", userID).
			Update("weight_unit_id", unitID).Error
		if err != nil {
			s.log.Errorw("failed to propagate weight unit change", "error", err)
			return unexpectedError(MsgUnexpectedError)
		}
	}

	unit := s.weightUnitFor(unitID)
	return success(MsgDefValuesUpdated, toUserDefaultValuesModel(*existing, unit))
}

// findDefaultValues fetches the exercise specific row, falling back to the
// user-wide one (mg_exercise_id = 0).
func (s *UserProfileService) findDefaultValues(mgExerciseID uint, userID string) (*models.UserDefaultValue, error) {
	var values models.UserDefaultValue
	err := s.db.Where("user_id = ? AND mg_exercise_id = ?", userID, mgExerciseID).First(&values).Error
	if err == nil {
		return &values, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if mgExerciseID == 0 {
		return nil, err
	}

	err = s.db.Where("user_id = ? AND mg_exercise_id = 0", userID).First(&values).Error
	if err != nil {
		return nil, err
	}
	return &values, nil
}

func (s *UserProfileService) weightUnitFor(unitID uint) models.WeightUnit {
	var unit models.WeightUnit
	s.db.First(&unit, "id = ?", unitID)
	return unit
}
