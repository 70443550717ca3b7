package services

import (
	"errors"

	"fitnessapi/logger"
	"fitnessapi/models"

	"gorm.io/gorm"
)

// ExerciseService implements workout exercises and the muscle group exercise
// catalogue.
type ExerciseService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExerciseService(db *gorm.DB, log *logger.Logger) *ExerciseService {
	return &ExerciseService{db: db, log: log}
}

// AddExerciseToWorkout creates the exercise with its sets.
func (s *ExerciseService) AddExerciseToWorkout(data ExerciseModel, workoutID uint) ActionResult {
	if err := data.Validate(); err != nil {
		return badRequest(err.Error())
	}

	exercise := models.Exercise{
		WorkoutID:     workoutID,
		Name:          data.Name,
		MuscleGroupID: data.MuscleGroupID,
		MGExerciseID:  data.MGExerciseID,
		Notes:         data.Notes,
	}
	if err := s.db.Create(&exercise).Error; err != nil {
		s.log.Errorw("failed to create exercise", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	for _, set := range data.Sets {
		row := models.Set{
			ExerciseID: exercise.ID,
			Reps:       set.Reps,
			Weight:     set.Weight,
			Rest:       set.Rest,
			Completed:  set.Completed,
		}
		if err := s.db.Create(&row).Error; err != nil {
			s.log.Errorw("failed to create set", "error", err)
			return unexpectedError(MsgUnexpectedError)
		}
	}

	return created(MsgSuccess, toExerciseModel(exercise))
}

// UpdateExercise overwrites the exercise and reconciles its sets: new sets
// are created, kept ones updated, missing ones deleted.
func (s *ExerciseService) UpdateExercise(data ExerciseModel, workoutID uint) ActionResult {
	if err := data.Validate(); err != nil {
		return badRequest(err.Error())
	}

	var exercise models.Exercise
	err := s.db.Where("id = ? AND workout_id = ?", data.ID, workoutID).First(&exercise).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgExerciseNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch exercise", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	exercise.Name = data.Name
	exercise.Notes = data.Notes
	if err := s.db.Save(&exercise).Error; err != nil {
		s.log.Errorw("failed to update exercise", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	keep := make([]uint, 0, len(data.Sets))
	for _, set := range data.Sets {
		if set.ID == 0 {
			row := models.Set{
				ExerciseID: exercise.ID,
				Reps:       set.Reps,
				Weight:     set.Weight,
				Rest:       set.Rest,
				Completed:  set.Completed,
			}
			if err := s.db.Create(&row).Error; err != nil {
				s.log.Errorw("failed to create set", "error", err)
				return unexpectedError(MsgUnexpectedError)
			}
			keep = append(keep, row.ID)
			continue
		}

		updates := models.Set{
			ID:         set.ID,
			ExerciseID: exercise.ID,
			Reps:       set.Reps,
			Weight:     set.Weight,
			Rest:       set.Rest,
			Completed:  set.Completed,
		}
		if err := s.db.Save(&updates).Error; err != nil {
			s.log.Errorw("failed to update set", "error", err)
			return unexpectedError(MsgUnexpectedError)
		}
		keep = append(keep, set.ID)
	}

	query := s.db.Where("exercise_id = ?", exercise.ID)
	if len(keep) > 0 {
		query = query.Where("id NOT IN ?", keep)
	}
	if err := query.Delete(&models.Set{}).Error; err != nil {
		s.log.Errorw("failed to delete removed sets", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgSuccess, toExerciseModel(exercise))
}

// DeleteExercise removes the exercise and its sets. The returned model
// carries the owning workout id so the caller can refresh the workout.
func (s *ExerciseService) DeleteExercise(exerciseID uint, userID string) ActionResult {
	if exerciseID == 0 {
		return badRequest(MsgObjectIDNotProvided)
	}

	var exercise models.Exercise
	err := s.db.First(&exercise, "id = ?", exerciseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgExerciseNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch exercise", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	// Ownership check through the workout
	var workout models.Workout
	err = s.db.Where("id = ? AND user_id = ?", exercise.WorkoutID, userID).First(&workout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgWorkoutNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch workout", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	if err := s.db.Where("exercise_id = ?", exercise.ID).Delete(&models.Set{}).Error; err != nil {
		s.log.Errorw("failed to delete sets", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}
	if err := s.db.Delete(&exercise).Error; err != nil {
		s.log.Errorw("failed to delete exercise", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgSuccess, toExerciseModel(exercise))
}

// AddMGExercise creates a user-defined muscle group exercise.
func (s *ExerciseService) AddMGExercise(data MGExerciseModel, userID string) ActionResult {
	if err := data.Validate(); err != nil {
		return badRequest(err.Error())
	}

	exercise := models.MGExercise{
		Name:          data.Name,
		Description:   data.Description,
		MuscleGroupID: data.MuscleGroupID,
		UserID:        &userID,
	}
	if err := s.db.Create(&exercise).Error; err != nil {
		s.log.Errorw("failed to create mg exercise", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return created(MsgSuccess, toMGExerciseModel(exercise))
}

// UpdateMGExercise overwrites a user-defined muscle group exercise.
func (s *ExerciseService) UpdateMGExercise(data MGExerciseModel, userID string) ActionResult {
	if err := data.Validate(); err != nil {
		return badRequest(err.Error())
	}

	var exercise models.MGExercise
	err := s.db.Where("id = ? AND user_id = ?", data.ID, userID).First(&exercise).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgMGExerciseNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch mg exercise", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	exercise.Name = data.Name
	exercise.Description = data.Description
	if err := s.db.Save(&exercise).Error; err != nil {
		s.log.Errorw("failed to update mg exercise", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgSuccess, toMGExerciseModel(exercise))
}

// DeleteMGExercise removes a user-defined muscle group exercise together
// with any default values stored for it.
func (s *ExerciseService) DeleteMGExercise(mgExerciseID uint, userID string) ActionResult {
	if mgExerciseID == 0 {
		return badRequest(MsgObjectIDNotProvided)
	}

	var exercise models.MGExercise
	err := s.db.Where("id = ? AND user_id = ?", mgExerciseID, userID).First(&exercise).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgMGExerciseNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch mg exercise", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	if err := s.db.Where("mg_exercise_id = ?", mgExerciseID).Delete(&models.UserDefaultValue{}).Error; err != nil {
		s.log.Errorw("failed to delete exercise default values", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}
	if err := s.db.Delete(&exercise).Error; err != nil {
		s.log.Errorw("failed to delete mg exercise", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgSuccess, toMGExerciseModel(exercise))
}

// GetMGExercises lists the exercises for a muscle group: defaults plus the
// user's own, or only the user's own when onlyForUser is set.
func (s *ExerciseService) GetMGExercises(muscleGroupID uint, onlyForUser bool, userID string) ActionResult {
	if muscleGroupID == 0 {
		return badRequest(MsgObjectIDNotProvided)
	}

	query := s.db.Where("muscle_group_id = ?", muscleGroupID)
	if onlyForUser {
		query = query.Where("user_id = ?", userID)
	} else {
		query = query.Where("user_id = ? OR user_id IS NULL", userID)
	}

	var exercises []models.MGExercise
	if err := query.Order("id").Find(&exercises).Error; err != nil {
		s.log.Errorw("failed to fetch mg exercises", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	data := make([]interface{}, 0, len(exercises))
	for _, e := range exercises {
		data = append(data, toMGExerciseModel(e))
	}
	return successList(data)
}
