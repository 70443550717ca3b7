package handlers

import (
	"net/http"

	"fitnessapi/middleware"
	"fitnessapi/services"
)

// UserService is the part of the user service the handlers depend on.
type UserService interface {
	Register(email, password string) services.ActionResult
	Login(email, password string) services.ActionResult
	ChangePassword(oldPassword, newPassword, userID string) services.ActionResult
}

// UserProfileService is the profile / default values surface.
type UserProfileService interface {
	UpdateUserProfile(data services.UserModel) services.ActionResult
	GetDefaultValues(mgExerciseID uint, userID string) services.ActionResult
	UpdateDefaultValues(data services.UserDefaultValuesModel, userID string) services.ActionResult
}

type UserHandler struct {
	users    UserService
	profiles UserProfileService
	workouts WorkoutService
}

func NewUserHandler(users UserService, profiles UserProfileService, workouts WorkoutService) *UserHandler {
	return &UserHandler{users: users, profiles: profiles, workouts: workouts}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	Password    string `json:"password"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(r, &req) {
		badRequestResponse(w, services.MsgRegisterFailed)
		return
	}

	writeResult(w, h.users.Register(req.Email, req.Password))
}

// Login responds with the user model and token, plus the user's last workout
// when one exists so the client can restore its state.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(r, &req) {
		badRequestResponse(w, services.MsgLoginFailed)
		return
	}

	result := h.users.Login(req.Email, req.Password)
	if !result.IsSuccess() {
		writeResult(w, result)
		return
	}

	if user, ok := result.Data[0].(services.UserModel); ok {
		lastWorkout := h.workouts.GetLastWorkout(user.ID)
		if lastWorkout.IsSuccess() && len(lastWorkout.Data) > 0 {
			result.Data = append(result.Data, lastWorkout.Data[0])
		}
	}

	writeResult(w, result)
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !decodeBody(r, &req) {
		badRequestResponse(w, services.MsgChangePasswordFail)
		return
	}

	writeResult(w, h.users.ChangePassword(req.OldPassword, req.Password, middleware.GetUserID(r.Context())))
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var data services.UserModel
	if !decodeBody(r, &data) {
		badRequestResponse(w, services.MsgProfileNotFound)
		return
	}
	// The profile being updated is always the caller's own
	data.ID = middleware.GetUserID(r.Context())

	writeResult(w, h.profiles.UpdateUserProfile(data))
}

func (h *UserHandler) GetDefaultValues(w http.ResponseWriter, r *http.Request) {
	mgExerciseID := queryUint(r, "mgExerciseId")

	writeResult(w, h.profiles.GetDefaultValues(mgExerciseID, middleware.GetUserID(r.Context())))
}

func (h *UserHandler) UpdateDefaultValues(w http.ResponseWriter, r *http.Request) {
	var data services.UserDefaultValuesModel
	if !decodeBody(r, &data) {
		badRequestResponse(w, services.MsgDefValuesUpdateFail)
		return
	}

	writeResult(w, h.profiles.UpdateDefaultValues(data, middleware.GetUserID(r.Context())))
}
