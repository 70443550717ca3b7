package services

import (
	"errors"
	"time"

	"fitnessapi/logger"
	"fitnessapi/models"

	"gorm.io/gorm"
)

// WorkoutService implements workout CRUD. Workouts are owner scoped: every
// lookup filters by the caller's user id.
type WorkoutService struct {
	db        *gorm.DB
	exercises *ExerciseService
	log       *logger.Logger
}

func NewWorkoutService(db *gorm.DB, exercises *ExerciseService, log *logger.Logger) *WorkoutService {
	return &WorkoutService{db: db, exercises: exercises, log: log}
}

// AddWorkout persists a new workout. Template workouts are created together
// with their exercises.
func (s *WorkoutService) AddWorkout(data WorkoutModel, userID string) ActionResult {
	if err := data.Validate(); err != nil {
		return badRequest(err.Error())
	}

	workout := models.Workout{
		Name:          data.Name,
		UserID:        userID,
		StartDateTime: time.Now(),
		Template:      data.Template,
		Notes:         data.Notes,
	}

	if err := s.db.Create(&workout).Error; err != nil {
		s.log.Errorw("failed to create workout", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	if data.Template {
		for _, e := range data.Exercises {
			if result := s.exercises.AddExerciseToWorkout(e, workout.ID); !result.IsSuccess() {
				return result
			}
		}
	}

	return created(MsgWorkoutAdded, s.loadWorkoutModel(workout.ID))
}

// UpdateWorkout overwrites the workout fields. Owner only.
func (s *WorkoutService) UpdateWorkout(data WorkoutModel, userID string) ActionResult {
	if err := data.Validate(); err != nil {
		return badRequest(err.Error())
	}

	workout, result := s.checkWorkoutExists(data.ID, userID)
	if workout == nil {
		return result
	}

	workout.Name = data.Name
	workout.DurationSeconds = data.DurationSeconds
	workout.Notes = data.Notes
	if data.FinishDateTime != "" {
		if finish, err := time.Parse(time.RFC3339, data.FinishDateTime); err == nil {
			workout.FinishDateTime = &finish
		}
	}

	if err := s.db.Save(workout).Error; err != nil {
		s.log.Errorw("failed to update workout", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgWorkoutUpdated, s.loadWorkoutModel(workout.ID))
}

// DeleteWorkout removes the workout with its exercises and sets. Owner only.
func (s *WorkoutService) DeleteWorkout(workoutID uint, userID string) ActionResult {
	if workoutID == 0 {
		return badRequest(MsgObjectIDNotProvided)
	}

	workout, result := s.checkWorkoutExists(workoutID, userID)
	if workout == nil {
		return result
	}

	var exerciseIDs []uint
	s.db.Model(&models.Exercise{}).Where("workout_id = ?", workoutID).Pluck("id", &exerciseIDs)
	if len(exerciseIDs) > 0 {
		if err := s.db.Where("exercise_id IN ?", exerciseIDs).Delete(&models.Set{}).Error; err != nil {
			s.log.Errorw("failed to delete sets", "error", err)
			return unexpectedError(MsgUnexpectedError)
		}
		if err := s.db.Where("workout_id = ?", workoutID).Delete(&models.Exercise{}).Error; err != nil {
			s.log.Errorw("failed to delete exercises", "error", err)
			return unexpectedError(MsgUnexpectedError)
		}
	}

	if err := s.db.Delete(workout).Error; err != nil {
		s.log.Errorw("failed to delete workout", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgWorkoutDeleted)
}

// GetWorkout returns a single workout with exercises and sets.
func (s *WorkoutService) GetWorkout(workoutID uint, userID string) ActionResult {
	var workout models.Workout
	err := s.db.Preload("Exercises.Sets").
		Where("id = ? AND user_id = ?", workoutID, userID).First(&workout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgWorkoutNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch workout", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgSuccess, toWorkoutModel(workout))
}

// GetLatestWorkouts returns the user's non-template workouts started on or
// after the given date, newest first.
func (s *WorkoutService) GetLatestWorkouts(startDate string, userID string) ActionResult {
	date, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return badRequest(MsgInvalidDateFormat)
	}

	var workouts []models.Workout
	err = s.db.Preload("Exercises.Sets").
		Where("user_id = ? AND template = ? AND start_date_time >= ?", userID, false, date).
		Order("start_date_time DESC").Find(&workouts).Error
	if err != nil {
		s.log.Errorw("failed to fetch workouts", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	data := make([]interface{}, 0, len(workouts))
	for _, w := range workouts {
		data = append(data, toWorkoutModel(w))
	}
	return successList(data)
}

// GetLastWorkout returns the most recently started non-template workout.
// Used by login to restore the client state.
func (s *WorkoutService) GetLastWorkout(userID string) ActionResult {
	var workout models.Workout
	err := s.db.Preload("Exercises.Sets").
		Where("user_id = ? AND template = ?", userID, false).
		Order("start_date_time DESC").First(&workout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgWorkoutNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch last workout", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgSuccess, toWorkoutModel(workout))
}

// GetWeightUnits returns the supported weight units.
func (s *WorkoutService) GetWeightUnits() ActionResult {
	var units []models.WeightUnit
	if err := s.db.Find(&units).Error; err != nil {
		s.log.Errorw("failed to fetch weight units", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}
	if len(units) == 0 {
		return notFound(MsgNoWeightUnits)
	}

	data := make([]interface{}, 0, len(units))
	for _, u := range units {
		data = append(data, toWeightUnitModel(u))
	}
	return successList(data)
}

// checkWorkoutExists fetches the owner-scoped workout, returning the failure
// result when it is missing.
func (s *WorkoutService) checkWorkoutExists(workoutID uint, userID string) (*models.Workout, ActionResult) {
	var workout models.Workout
	err := s.db.Where("id = ? AND user_id = ?", workoutID, userID).First(&workout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(MsgWorkoutNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch workout", "error", err)
		return nil, unexpectedError(MsgUnexpectedError)
	}
	return &workout, ActionResult{}
}

// loadWorkoutModel reloads the workout with its exercises for the response.
func (s *WorkoutService) loadWorkoutModel(workoutID uint) WorkoutModel {
	var workout models.Workout
	s.db.Preload("Exercises.Sets").First(&workout, "id = ?", workoutID)
	return toWorkoutModel(workout)
}
