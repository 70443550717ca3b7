package handlers

import (
	"net/http"

	"fitnessapi/middleware"
	"fitnessapi/services"
)

// ExerciseService is the part of the exercise service the handlers depend on.
type ExerciseService interface {
	AddExerciseToWorkout(data services.ExerciseModel, workoutID uint) services.ActionResult
	UpdateExercise(data services.ExerciseModel, workoutID uint) services.ActionResult
	DeleteExercise(exerciseID uint, userID string) services.ActionResult
	AddMGExercise(data services.MGExerciseModel, userID string) services.ActionResult
	UpdateMGExercise(data services.MGExerciseModel, userID string) services.ActionResult
	DeleteMGExercise(mgExerciseID uint, userID string) services.ActionResult
	GetMGExercises(muscleGroupID uint, onlyForUser bool, userID string) services.ActionResult
}

// MuscleGroupService lists the muscle groups visible to a user.
type MuscleGroupService interface {
	GetMuscleGroups(userID string) services.ActionResult
}

// ExerciseHandler serves workout exercises, the muscle group exercise
// catalogue and the muscle group list. Exercise mutations respond with the
// refreshed owning workout so clients can re-render it in one round trip.
type ExerciseHandler struct {
	exercises    ExerciseService
	workouts     WorkoutService
	muscleGroups MuscleGroupService
}

func NewExerciseHandler(exercises ExerciseService, workouts WorkoutService, muscleGroups MuscleGroupService) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises, workouts: workouts, muscleGroups: muscleGroups}
}

type exerciseIDRequest struct {
	ExerciseID uint `json:"exercise_id"`
}

type mgExerciseIDRequest struct {
	MGExerciseID uint `json:"mg_exercise_id"`
}

func (h *ExerciseHandler) Add(w http.ResponseWriter, r *http.Request) {
	var data services.ExerciseModel
	if !decodeBody(r, &data) || data.WorkoutID == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	result := h.exercises.AddExerciseToWorkout(data, data.WorkoutID)
	if !result.IsSuccess() {
		writeResult(w, result)
		return
	}

	h.respondWithWorkout(w, r, data.WorkoutID)
}

func (h *ExerciseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var data services.ExerciseModel
	if !decodeBody(r, &data) || data.WorkoutID == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	result := h.exercises.UpdateExercise(data, data.WorkoutID)
	if !result.IsSuccess() {
		writeResult(w, result)
		return
	}

	h.respondWithWorkout(w, r, data.WorkoutID)
}

// Delete removes the exercise and responds with the refreshed owning
// workout, whose id comes back from the service.
func (h *ExerciseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req exerciseIDRequest
	if !decodeBody(r, &req) || req.ExerciseID == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	result := h.exercises.DeleteExercise(req.ExerciseID, middleware.GetUserID(r.Context()))
	if !result.IsSuccess() {
		writeResult(w, result)
		return
	}

	deleted, ok := result.Data[0].(services.ExerciseModel)
	if !ok {
		writeResponse(w, http.StatusInternalServerError, services.MsgUnexpectedError, nil)
		return
	}

	h.respondWithWorkout(w, r, deleted.WorkoutID)
}

func (h *ExerciseHandler) AddMGExercise(w http.ResponseWriter, r *http.Request) {
	var data services.MGExerciseModel
	if !decodeBody(r, &data) {
		badRequestResponse(w, services.MsgExerciseNameRequired)
		return
	}

	writeResult(w, h.exercises.AddMGExercise(data, middleware.GetUserID(r.Context())))
}

func (h *ExerciseHandler) UpdateMGExercise(w http.ResponseWriter, r *http.Request) {
	var data services.MGExerciseModel
	if !decodeBody(r, &data) {
		badRequestResponse(w, services.MsgExerciseNameRequired)
		return
	}

	writeResult(w, h.exercises.UpdateMGExercise(data, middleware.GetUserID(r.Context())))
}

func (h *ExerciseHandler) DeleteMGExercise(w http.ResponseWriter, r *http.Request) {
	var req mgExerciseIDRequest
	if !decodeBody(r, &req) || req.MGExerciseID == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	writeResult(w, h.exercises.DeleteMGExercise(req.MGExerciseID, middleware.GetUserID(r.Context())))
}

func (h *ExerciseHandler) GetMGExercises(w http.ResponseWriter, r *http.Request) {
	muscleGroupID := queryUint(r, "muscleGroupId")
	if muscleGroupID == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}
	onlyForUser := r.URL.Query().Get("onlyForUser") == "Y"

	writeResult(w, h.exercises.GetMGExercises(muscleGroupID, onlyForUser, middleware.GetUserID(r.Context())))
}

func (h *ExerciseHandler) MuscleGroups(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.muscleGroups.GetMuscleGroups(middleware.GetUserID(r.Context())))
}

func (h *ExerciseHandler) respondWithWorkout(w http.ResponseWriter, r *http.Request, workoutID uint) {
	writeResult(w, h.workouts.GetWorkout(workoutID, middleware.GetUserID(r.Context())))
}
