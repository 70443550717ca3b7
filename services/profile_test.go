package services

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfileService_GetDefaultValues_Fallback(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewUserProfileService(db, testLogger())

	// No exercise specific row, the user-wide fallback is returned
	mock.ExpectQuery(`SELECT (.+) FROM "user_default_values"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT (.+) FROM "user_default_values"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "mg_exercise_id", "sets", "reps", "weight", "rest", "completed", "weight_unit_id"}).
			AddRow(1, "u1", 0, 3, 10, 50.0, 60, false, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "weight_units"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text"}).AddRow(1, "kg"))

	result := service.GetDefaultValues(15, "u1")

	require.Equal(t, http.StatusOK, result.Code)
	values := result.Data[0].(UserDefaultValuesModel)
	assert.Equal(t, uint(15), values.MGExerciseID)
	assert.Equal(t, 3, values.Sets)
	assert.Equal(t, 10, values.Reps)
	assert.Equal(t, "kg", values.WeightUnit.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserProfileService_GetDefaultValues_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewUserProfileService(db, testLogger())

	mock.ExpectQuery(`SELECT (.+) FROM "user_default_values"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT (.+) FROM "user_default_values"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result := service.GetDefaultValues(15, "u1")

	assert.Equal(t, http.StatusNotFound, result.Code)
	assert.Equal(t, MsgDefValuesNotFound, result.Message)
}

func TestUserProfileService_UpdateDefaultValues_CreatesExerciseRow(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewUserProfileService(db, testLogger())

	// Only the user-wide fallback exists for this exercise
	mock.ExpectQuery(`SELECT (.+) FROM "user_default_values"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT (.+) FROM "user_default_values"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "mg_exercise_id", "weight_unit_id"}).
			AddRow(1, "u1", 0, 1))
	mock.ExpectQuery(`INSERT INTO "user_default_values"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(`SELECT (.+) FROM "weight_units"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text"}).AddRow(1, "kg"))

	data := UserDefaultValuesModel{
		MGExerciseID: 15,
		Sets:         4,
		Reps:         8,
		Weight:       60,
		WeightUnit:   WeightUnitModel{ID: 1},
	}
	result := service.UpdateDefaultValues(data, "u1")

	require.Equal(t, http.StatusCreated, result.Code)
	assert.Equal(t, MsgDefValuesUpdated, result.Message)
	values := result.Data[0].(UserDefaultValuesModel)
	assert.Equal(t, uint(15), values.MGExerciseID)
	assert.Equal(t, 4, values.Sets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserProfileService_UpdateDefaultValues_UnitChangePropagates(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewUserProfileService(db, testLogger())

	mock.ExpectQuery(`SELECT (.+) FROM "user_default_values"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "mg_exercise_id", "sets", "reps", "weight_unit_id"}).
			AddRow(2, "u1", 15, 3, 10, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "weight_units"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text"}).AddRow(2, "lbs"))
	mock.ExpectExec(`UPDATE "user_default_values"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// The new unit fans out to the user's other exercise rows
	mock.ExpectExec(`UPDATE "user_default_values"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(`SELECT (.+) FROM "weight_units"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text"}).AddRow(2, "lbs"))

	data := UserDefaultValuesModel{
		MGExerciseID: 15,
		Sets:         3,
		Reps:         10,
		WeightUnit:   WeightUnitModel{ID: 2},
	}
	result := service.UpdateDefaultValues(data, "u1")

	require.Equal(t, http.StatusOK, result.Code)
	values := result.Data[0].(UserDefaultValuesModel)
	assert.Equal(t, "lbs", values.WeightUnit.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserProfileService_UpdateUserProfile_Validation(t *testing.T) {
	db, _ := newTestDB(t)
	service := NewUserProfileService(db, testLogger())

	result := service.UpdateUserProfile(UserModel{})

	assert.Equal(t, http.StatusBadRequest, result.Code)
	assert.Equal(t, MsgObjectIDNotProvided, result.Message)
}
