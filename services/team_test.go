package services

import (
	"net/http"
	"testing"

	"fitnessapi/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService_AddTeam_Validation(t *testing.T) {
	db, _ := newTestDB(t)
	service := NewTeamService(db, testLogger())

	result := service.AddTeam(TeamModel{Name: "   "}, "u1")

	assert.Equal(t, http.StatusBadRequest, result.Code)
	assert.Equal(t, MsgTeamNameRequired, result.Message)
}

func TestTeamService_InviteMember_Success(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewTeamService(db, testLogger())

	mock.ExpectQuery(`SELECT (.+) FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id"}).AddRow(5, "Lions", "owner"))
	mock.ExpectQuery(`SELECT (.+) FROM "team_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "team_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectQuery(`SELECT (.+) FROM "user_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name"}).AddRow(1, "bob", "Bob"))

	result := service.InviteMember(5, "bob")

	require.Equal(t, http.StatusCreated, result.Code)
	require.Len(t, result.Data, 1)
	member := result.Data[0].(TeamMemberModel)
	assert.Equal(t, uint(8), member.ID)
	assert.Equal(t, uint(5), member.TeamID)
	assert.Equal(t, "bob", member.UserID)
	assert.Equal(t, string(models.MemberStateInvited), member.State)
	assert.Equal(t, "Bob", member.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_InviteMember_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewTeamService(db, testLogger())

	mock.ExpectQuery(`SELECT (.+) FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id"}).AddRow(5, "Lions", "owner"))
	mock.ExpectQuery(`SELECT (.+) FROM "team_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "team_id", "user_id", "state"}).
			AddRow(8, 5, "bob", "INVITED"))

	result := service.InviteMember(5, "bob")

	assert.Equal(t, http.StatusBadRequest, result.Code)
	assert.Equal(t, MsgMemberAlreadyInvited, result.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_InviteMember_TeamNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewTeamService(db, testLogger())

	mock.ExpectQuery(`SELECT (.+) FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result := service.InviteMember(5, "bob")

	assert.Equal(t, http.StatusNotFound, result.Code)
	assert.Equal(t, MsgTeamNotFound, result.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_AcceptDeclineInvite_Accept(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewTeamService(db, testLogger())

	mock.ExpectQuery(`SELECT (.+) FROM "team_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "team_id", "user_id", "state"}).
			AddRow(7, 5, "bob", "INVITED"))
	mock.ExpectExec(`UPDATE "team_members"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Only the still-active invite notification qualifies for deactivation
	mock.ExpectQuery(`SELECT (.+) FROM "notifications" WHERE receiver_user_id = (.+) AND team_id = (.+) AND type = (.+) AND is_active = `).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	result := service.AcceptDeclineInvite("bob", 5, models.MemberStateAccepted)

	require.Equal(t, http.StatusOK, result.Code)
	assert.Equal(t, MsgInviteAccepted, result.Message)
	require.Len(t, result.Data, 1)
	change := result.Data[0].(InviteChangeModel)
	assert.Equal(t, uint(7), change.MemberID)
	assert.Equal(t, uint(9), change.NotificationID)
	assert.Equal(t, string(models.MemberStateAccepted), change.State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_AcceptDeclineInvite_Decline(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewTeamService(db, testLogger())

	mock.ExpectQuery(`SELECT (.+) FROM "team_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "team_id", "user_id", "state"}).
			AddRow(7, 5, "bob", "INVITED"))
	mock.ExpectExec(`UPDATE "team_members"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result := service.AcceptDeclineInvite("bob", 5, models.MemberStateDeclined)

	require.Equal(t, http.StatusOK, result.Code)
	assert.Equal(t, MsgInviteDeclined, result.Message)
	change := result.Data[0].(InviteChangeModel)
	assert.Zero(t, change.NotificationID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_AcceptDeclineInvite_InvalidState(t *testing.T) {
	db, _ := newTestDB(t)
	service := NewTeamService(db, testLogger())

	result := service.AcceptDeclineInvite("bob", 5, models.MemberStateInvited)

	assert.Equal(t, http.StatusBadRequest, result.Code)
}

func TestTeamService_AcceptDeclineInvite_MemberNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewTeamService(db, testLogger())

	mock.ExpectQuery(`SELECT (.+) FROM "team_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result := service.AcceptDeclineInvite("bob", 5, models.MemberStateAccepted)

	assert.Equal(t, http.StatusNotFound, result.Code)
	assert.Equal(t, MsgMemberNotFound, result.Message)
}

func TestTeamService_RemoveMember(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewTeamService(db, testLogger())

	mock.ExpectQuery(`SELECT (.+) FROM "team_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "team_id", "user_id", "state"}).
			AddRow(8, 5, "bob", "ACCEPTED"))
	mock.ExpectExec(`DELETE FROM "team_members"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "user_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result := service.RemoveMember(TeamMemberModel{ID: 8})

	require.Equal(t, http.StatusOK, result.Code)
	removed := result.Data[0].(TeamMemberModel)
	assert.Equal(t, uint(5), removed.TeamID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_RemoveMember_NoID(t *testing.T) {
	db, _ := newTestDB(t)
	service := NewTeamService(db, testLogger())

	result := service.RemoveMember(TeamMemberModel{})

	assert.Equal(t, http.StatusBadRequest, result.Code)
}

func TestTeamService_LeaveTeam(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewTeamService(db, testLogger())

	mock.ExpectQuery(`SELECT (.+) FROM "team_members" WHERE team_id = (.+) AND user_id = (.+) AND state = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "team_id", "user_id", "state"}).
			AddRow(8, 5, "bob", "ACCEPTED"))
	mock.ExpectExec(`DELETE FROM "team_members"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result := service.LeaveTeam(5, "bob")

	assert.Equal(t, http.StatusOK, result.Code)
	assert.Equal(t, MsgTeamLeft, result.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_LeaveTeam_PendingInviteNotCovered(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewTeamService(db, testLogger())

	// The ACCEPTED-scoped lookup does not match an INVITED row
	mock.ExpectQuery(`SELECT (.+) FROM "team_members" WHERE team_id = (.+) AND user_id = (.+) AND state = `).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result := service.LeaveTeam(5, "bob")

	assert.Equal(t, http.StatusNotFound, result.Code)
	assert.Equal(t, MsgMemberNotFound, result.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_GetMyTeams(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewTeamService(db, testLogger())

	mock.ExpectQuery(`SELECT (.+) FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id"}).
			AddRow(1, "Lions", "u1").
			AddRow(2, "Tigers", "u1"))

	result := service.GetMyTeams("u1")

	require.Equal(t, http.StatusOK, result.Code)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "Lions", result.Data[0].(TeamModel).Name)
	assert.Equal(t, "Tigers", result.Data[1].(TeamModel).Name)
}

func TestTeamService_UpdateTeam_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewTeamService(db, testLogger())

	mock.ExpectQuery(`SELECT (.+) FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result := service.UpdateTeam(TeamModel{ID: 3, Name: "Lions"}, "intruder")

	assert.Equal(t, http.StatusNotFound, result.Code)
	assert.Equal(t, MsgTeamNotFound, result.Message)
}

func TestTeamService_GetUsersToInvite_Validation(t *testing.T) {
	db, _ := newTestDB(t)
	service := NewTeamService(db, testLogger())

	result := service.GetUsersToInvite("  ", 5, "u1")

	assert.Equal(t, http.StatusBadRequest, result.Code)
	assert.Equal(t, MsgSearchNameNotProvided, result.Message)
}
