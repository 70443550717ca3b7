package handlers

import (
	"net/http"

	"fitnessapi/middleware"
	"fitnessapi/services"
)

// WorkoutService is the part of the workout service the handlers depend on.
type WorkoutService interface {
	AddWorkout(data services.WorkoutModel, userID string) services.ActionResult
	UpdateWorkout(data services.WorkoutModel, userID string) services.ActionResult
	DeleteWorkout(workoutID uint, userID string) services.ActionResult
	GetWorkout(workoutID uint, userID string) services.ActionResult
	GetLatestWorkouts(startDate string, userID string) services.ActionResult
	GetLastWorkout(userID string) services.ActionResult
	GetWeightUnits() services.ActionResult
}

type WorkoutHandler struct {
	workouts WorkoutService
}

func NewWorkoutHandler(workouts WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

type workoutIDRequest struct {
	WorkoutID uint `json:"workout_id"`
}

func (h *WorkoutHandler) Add(w http.ResponseWriter, r *http.Request) {
	var data services.WorkoutModel
	if !decodeBody(r, &data) {
		badRequestResponse(w, services.MsgWorkoutNameRequired)
		return
	}

	writeResult(w, h.workouts.AddWorkout(data, middleware.GetUserID(r.Context())))
}

func (h *WorkoutHandler) Update(w http.ResponseWriter, r *http.Request) {
	var data services.WorkoutModel
	if !decodeBody(r, &data) {
		badRequestResponse(w, services.MsgWorkoutNameRequired)
		return
	}

	writeResult(w, h.workouts.UpdateWorkout(data, middleware.GetUserID(r.Context())))
}

func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req workoutIDRequest
	if !decodeBody(r, &req) || req.WorkoutID == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	writeResult(w, h.workouts.DeleteWorkout(req.WorkoutID, middleware.GetUserID(r.Context())))
}

func (h *WorkoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	workoutID := queryUint(r, "workoutId")
	if workoutID == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	writeResult(w, h.workouts.GetWorkout(workoutID, middleware.GetUserID(r.Context())))
}

func (h *WorkoutHandler) Latest(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	if startDate == "" {
		badRequestResponse(w, services.MsgInvalidDateFormat)
		return
	}

	writeResult(w, h.workouts.GetLatestWorkouts(startDate, middleware.GetUserID(r.Context())))
}

func (h *WorkoutHandler) WeightUnits(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.workouts.GetWeightUnits())
}
