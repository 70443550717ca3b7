package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fitnessapi/services"

	"github.com/stretchr/testify/assert"
)

type exerciseServiceFake struct {
	addExercise    func(data services.ExerciseModel, workoutID uint) services.ActionResult
	updateExercise func(data services.ExerciseModel, workoutID uint) services.ActionResult
	deleteExercise func(exerciseID uint, userID string) services.ActionResult
	getMGExercises func(muscleGroupID uint, onlyForUser bool, userID string) services.ActionResult
}

func (f *exerciseServiceFake) AddExerciseToWorkout(data services.ExerciseModel, workoutID uint) services.ActionResult {
	if f.addExercise != nil {
		return f.addExercise(data, workoutID)
	}
	return createdResult()
}

func (f *exerciseServiceFake) UpdateExercise(data services.ExerciseModel, workoutID uint) services.ActionResult {
	if f.updateExercise != nil {
		return f.updateExercise(data, workoutID)
	}
	return okResult()
}

func (f *exerciseServiceFake) DeleteExercise(exerciseID uint, userID string) services.ActionResult {
	if f.deleteExercise != nil {
		return f.deleteExercise(exerciseID, userID)
	}
	return okResult()
}

func (f *exerciseServiceFake) AddMGExercise(data services.MGExerciseModel, userID string) services.ActionResult {
	return createdResult()
}

func (f *exerciseServiceFake) UpdateMGExercise(data services.MGExerciseModel, userID string) services.ActionResult {
	return okResult()
}

func (f *exerciseServiceFake) DeleteMGExercise(mgExerciseID uint, userID string) services.ActionResult {
	return okResult()
}

func (f *exerciseServiceFake) GetMGExercises(muscleGroupID uint, onlyForUser bool, userID string) services.ActionResult {
	if f.getMGExercises != nil {
		return f.getMGExercises(muscleGroupID, onlyForUser, userID)
	}
	return okResult()
}

type muscleGroupServiceFake struct {
	getMuscleGroups func(userID string) services.ActionResult
}

func (f *muscleGroupServiceFake) GetMuscleGroups(userID string) services.ActionResult {
	if f.getMuscleGroups != nil {
		return f.getMuscleGroups(userID)
	}
	return okResult()
}

func TestExerciseHandler_Add_RespondsWithWorkout(t *testing.T) {
	var refreshedID uint
	workouts := &workoutServiceFake{
		getWorkout: func(workoutID uint, userID string) services.ActionResult {
			refreshedID = workoutID
			return okResult(services.WorkoutModel{ID: workoutID, Name: "Push day"})
		},
	}
	handler := NewExerciseHandler(&exerciseServiceFake{}, workouts, &muscleGroupServiceFake{})

	rec := httptest.NewRecorder()
	handler.Add(rec, authRequest(t, http.MethodPost, "/api/exercise/add",
		map[string]interface{}{"workout_id": 4, "name": "Bench press"}))

	resp := decodeResponse(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, uint(4), refreshedID)
}

func TestExerciseHandler_Add_MissingWorkoutID(t *testing.T) {
	handler := NewExerciseHandler(&exerciseServiceFake{}, &workoutServiceFake{}, &muscleGroupServiceFake{})

	rec := httptest.NewRecorder()
	handler.Add(rec, authRequest(t, http.MethodPost, "/api/exercise/add",
		map[string]interface{}{"name": "Bench press"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExerciseHandler_Delete_UsesWorkoutFromResult(t *testing.T) {
	var refreshedID uint
	exercises := &exerciseServiceFake{
		deleteExercise: func(exerciseID uint, userID string) services.ActionResult {
			assert.Equal(t, uint(10), exerciseID)
			assert.Equal(t, "caller", userID)
			return okResult(services.ExerciseModel{ID: exerciseID, WorkoutID: 4})
		},
	}
	workouts := &workoutServiceFake{
		getWorkout: func(workoutID uint, userID string) services.ActionResult {
			refreshedID = workoutID
			return okResult(services.WorkoutModel{ID: workoutID})
		},
	}
	handler := NewExerciseHandler(exercises, workouts, &muscleGroupServiceFake{})

	rec := httptest.NewRecorder()
	handler.Delete(rec, authRequest(t, http.MethodPost, "/api/exercise/delete",
		map[string]interface{}{"exercise_id": 10}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(4), refreshedID)
}

func TestExerciseHandler_GetMGExercises(t *testing.T) {
	var gotGroup uint
	var gotOnlyForUser bool
	exercises := &exerciseServiceFake{
		getMGExercises: func(muscleGroupID uint, onlyForUser bool, userID string) services.ActionResult {
			gotGroup, gotOnlyForUser = muscleGroupID, onlyForUser
			return okResult()
		},
	}
	handler := NewExerciseHandler(exercises, &workoutServiceFake{}, &muscleGroupServiceFake{})

	rec := httptest.NewRecorder()
	handler.GetMGExercises(rec, authRequest(t, http.MethodGet, "/api/mg-exercise/get?muscleGroupId=3&onlyForUser=Y", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(3), gotGroup)
	assert.True(t, gotOnlyForUser)
}
