package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fitnessapi/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userServiceFake struct {
	register       func(email, password string) services.ActionResult
	login          func(email, password string) services.ActionResult
	changePassword func(oldPassword, newPassword, userID string) services.ActionResult
}

func (f *userServiceFake) Register(email, password string) services.ActionResult {
	if f.register != nil {
		return f.register(email, password)
	}
	return createdResult()
}

func (f *userServiceFake) Login(email, password string) services.ActionResult {
	if f.login != nil {
		return f.login(email, password)
	}
	return okResult()
}

func (f *userServiceFake) ChangePassword(oldPassword, newPassword, userID string) services.ActionResult {
	if f.changePassword != nil {
		return f.changePassword(oldPassword, newPassword, userID)
	}
	return okResult()
}

type profileServiceFake struct {
	updateProfile       func(data services.UserModel) services.ActionResult
	getDefaultValues    func(mgExerciseID uint, userID string) services.ActionResult
	updateDefaultValues func(data services.UserDefaultValuesModel, userID string) services.ActionResult
}

func (f *profileServiceFake) UpdateUserProfile(data services.UserModel) services.ActionResult {
	if f.updateProfile != nil {
		return f.updateProfile(data)
	}
	return okResult()
}

func (f *profileServiceFake) GetDefaultValues(mgExerciseID uint, userID string) services.ActionResult {
	if f.getDefaultValues != nil {
		return f.getDefaultValues(mgExerciseID, userID)
	}
	return okResult()
}

func (f *profileServiceFake) UpdateDefaultValues(data services.UserDefaultValuesModel, userID string) services.ActionResult {
	if f.updateDefaultValues != nil {
		return f.updateDefaultValues(data, userID)
	}
	return okResult()
}

type workoutServiceFake struct {
	getWorkout     func(workoutID uint, userID string) services.ActionResult
	getLastWorkout func(userID string) services.ActionResult
}

func (f *workoutServiceFake) AddWorkout(data services.WorkoutModel, userID string) services.ActionResult {
	return createdResult()
}

func (f *workoutServiceFake) UpdateWorkout(data services.WorkoutModel, userID string) services.ActionResult {
	return okResult()
}

func (f *workoutServiceFake) DeleteWorkout(workoutID uint, userID string) services.ActionResult {
	return okResult()
}

func (f *workoutServiceFake) GetWorkout(workoutID uint, userID string) services.ActionResult {
	if f.getWorkout != nil {
		return f.getWorkout(workoutID, userID)
	}
	return okResult()
}

func (f *workoutServiceFake) GetLatestWorkouts(startDate string, userID string) services.ActionResult {
	return okResult()
}

func (f *workoutServiceFake) GetLastWorkout(userID string) services.ActionResult {
	if f.getLastWorkout != nil {
		return f.getLastWorkout(userID)
	}
	return services.ActionResult{Code: http.StatusNotFound, Message: services.MsgWorkoutNotFound}
}

func (f *workoutServiceFake) GetWeightUnits() services.ActionResult {
	return okResult()
}

func TestUserHandler_Login_AppendsLastWorkout(t *testing.T) {
	users := &userServiceFake{
		login: func(email, password string) services.ActionResult {
			return okResult(services.UserModel{ID: "u1", Email: email}, "a-token")
		},
	}
	workouts := &workoutServiceFake{
		getLastWorkout: func(userID string) services.ActionResult {
			assert.Equal(t, "u1", userID)
			return okResult(services.WorkoutModel{ID: 4, Name: "Push day"})
		},
	}
	handler := NewUserHandler(users, &profileServiceFake{}, workouts)

	rec := httptest.NewRecorder()
	handler.Login(rec, authRequest(t, http.MethodPost, "/api/user/login",
		map[string]interface{}{"email": "bob@example.com", "password": "password123"}))

	resp := decodeResponse(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	// user model, token, last workout
	assert.Len(t, resp.Data, 3)
}

func TestUserHandler_Login_NoLastWorkout(t *testing.T) {
	users := &userServiceFake{
		login: func(email, password string) services.ActionResult {
			return okResult(services.UserModel{ID: "u1"}, "a-token")
		},
	}
	handler := NewUserHandler(users, &profileServiceFake{}, &workoutServiceFake{})

	rec := httptest.NewRecorder()
	handler.Login(rec, authRequest(t, http.MethodPost, "/api/user/login",
		map[string]interface{}{"email": "bob@example.com", "password": "password123"}))

	resp := decodeResponse(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp.Data, 2)
}

func TestUserHandler_Login_Failure(t *testing.T) {
	users := &userServiceFake{
		login: func(email, password string) services.ActionResult {
			return services.ActionResult{Code: http.StatusBadRequest, Message: services.MsgLoginFailed}
		},
	}
	handler := NewUserHandler(users, &profileServiceFake{}, &workoutServiceFake{})

	rec := httptest.NewRecorder()
	handler.Login(rec, authRequest(t, http.MethodPost, "/api/user/login",
		map[string]interface{}{"email": "bob@example.com", "password": "wrong"}))

	resp := decodeResponse(t, rec)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, services.MsgLoginFailed, resp.Message)
}

func TestUserHandler_UpdateProfile_ForcesCallerID(t *testing.T) {
	var updated services.UserModel
	profiles := &profileServiceFake{
		updateProfile: func(data services.UserModel) services.ActionResult {
			updated = data
			return okResult(data)
		},
	}
	handler := NewUserHandler(&userServiceFake{}, profiles, &workoutServiceFake{})

	rec := httptest.NewRecorder()
	handler.UpdateProfile(rec, authRequest(t, http.MethodPost, "/api/user/profile/update",
		map[string]interface{}{"id": "someone-else", "full_name": "Bob"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "caller", updated.ID)
	assert.Equal(t, "Bob", updated.FullName)
}

func TestUserHandler_ChangePassword(t *testing.T) {
	var gotOld, gotNew, gotUser string
	users := &userServiceFake{
		changePassword: func(oldPassword, newPassword, userID string) services.ActionResult {
			gotOld, gotNew, gotUser = oldPassword, newPassword, userID
			return okResult()
		},
	}
	handler := NewUserHandler(users, &profileServiceFake{}, &workoutServiceFake{})

	rec := httptest.NewRecorder()
	handler.ChangePassword(rec, authRequest(t, http.MethodPost, "/api/user/change-password",
		map[string]interface{}{"old_password": "password123", "password": "newpassword1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "password123", gotOld)
	assert.Equal(t, "newpassword1", gotNew)
	assert.Equal(t, "caller", gotUser)
}

func TestUserHandler_GetDefaultValues(t *testing.T) {
	var gotExercise uint
	profiles := &profileServiceFake{
		getDefaultValues: func(mgExerciseID uint, userID string) services.ActionResult {
			gotExercise = mgExerciseID
			require.Equal(t, "caller", userID)
			return okResult(services.UserDefaultValuesModel{MGExerciseID: mgExerciseID})
		},
	}
	handler := NewUserHandler(&userServiceFake{}, profiles, &workoutServiceFake{})

	rec := httptest.NewRecorder()
	handler.GetDefaultValues(rec, authRequest(t, http.MethodGet, "/api/user/default-values?mgExerciseId=15", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(15), gotExercise)
}
