package handlers

import (
	"net/http"

	"fitnessapi/middleware"
	"fitnessapi/models"
	"fitnessapi/services"
)

// TeamService is the part of the team service the handler depends on.
type TeamService interface {
	AddTeam(data services.TeamModel, userID string) services.ActionResult
	UpdateTeam(data services.TeamModel, userID string) services.ActionResult
	DeleteTeam(teamID uint, userID string) services.ActionResult
	LeaveTeam(teamID uint, userID string) services.ActionResult
	InviteMember(teamID uint, userID string) services.ActionResult
	RemoveMember(data services.TeamMemberModel) services.ActionResult
	AcceptDeclineInvite(userID string, teamID uint, newState models.MemberState) services.ActionResult
	GetMyTeams(userID string) services.ActionResult
	GetTeamMembers(teamID uint) services.ActionResult
	GetUsersToInvite(name string, teamID uint, userID string) services.ActionResult
}

// TeamNotificationService is the notification surface the team handler
// orchestrates after team mutations.
type TeamNotificationService interface {
	AddTeamInviteNotification(receiverUserID, senderUserID string, teamID uint) services.ActionResult
	AddAcceptedDeclinedNotification(senderUserID string, teamID uint, notificationType models.NotificationType) services.ActionResult
	UpdateNotification(id uint, isActive bool) services.ActionResult
	DeleteNotifications(data services.TeamMemberModel, teamID uint) services.ActionResult
	GetNotifications(userID string) services.ActionResult
}

type TeamHandler struct {
	teams         TeamService
	notifications TeamNotificationService
}

func NewTeamHandler(teams TeamService, notifications TeamNotificationService) *TeamHandler {
	return &TeamHandler{teams: teams, notifications: notifications}
}

type teamIDRequest struct {
	TeamID uint `json:"team_id"`
}

type inviteMemberRequest struct {
	TeamID uint   `json:"team_id"`
	UserID string `json:"user_id"`
}

func (h *TeamHandler) Add(w http.ResponseWriter, r *http.Request) {
	var data services.TeamModel
	if !decodeBody(r, &data) {
		badRequestResponse(w, services.MsgTeamNameRequired)
		return
	}

	writeResult(w, h.teams.AddTeam(data, middleware.GetUserID(r.Context())))
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	var data services.TeamModel
	if !decodeBody(r, &data) {
		badRequestResponse(w, services.MsgTeamNameRequired)
		return
	}

	writeResult(w, h.teams.UpdateTeam(data, middleware.GetUserID(r.Context())))
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req teamIDRequest
	if !decodeBody(r, &req) || req.TeamID == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	writeResult(w, h.teams.DeleteTeam(req.TeamID, middleware.GetUserID(r.Context())))
}

// Leave removes the caller's membership and purges the notifications tied to
// the (team, caller) pair, same as RemoveMember does for the removed user.
func (h *TeamHandler) Leave(w http.ResponseWriter, r *http.Request) {
	var req teamIDRequest
	if !decodeBody(r, &req) || req.TeamID == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	callerID := middleware.GetUserID(r.Context())
	result := h.teams.LeaveTeam(req.TeamID, callerID)
	if !result.IsSuccess() {
		writeResult(w, result)
		return
	}

	h.notifications.DeleteNotifications(services.TeamMemberModel{UserID: callerID}, req.TeamID)

	writeResult(w, result)
}

// InviteMember inserts the INVITED membership row and notifies the invitee.
// When the notification step fails the freshly created membership row is
// deleted again, so the two stay consistent despite the separate commits.
func (h *TeamHandler) InviteMember(w http.ResponseWriter, r *http.Request) {
	var req inviteMemberRequest
	if !decodeBody(r, &req) || req.TeamID == 0 || req.UserID == "" {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	callerID := middleware.GetUserID(r.Context())
	result := h.teams.InviteMember(req.TeamID, req.UserID)
	if !result.IsSuccess() {
		writeResult(w, result)
		return
	}

	notifyResult := h.notifications.AddTeamInviteNotification(req.UserID, callerID, req.TeamID)
	if !notifyResult.IsSuccess() {
		// Compensating cleanup: take the membership row back out
		if member, ok := result.Data[0].(services.TeamMemberModel); ok {
			h.teams.RemoveMember(member)
		}
		badRequestResponse(w, services.MsgFailedToSendInvite)
		return
	}

	writeResult(w, h.teams.GetTeamMembers(req.TeamID))
}

// RemoveMember deletes the membership row, purges the pair's notifications
// and responds with the refreshed member list.
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	var data services.TeamMemberModel
	if !decodeBody(r, &data) || data.ID == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	result := h.teams.RemoveMember(data)
	if !result.IsSuccess() {
		writeResult(w, result)
		return
	}

	removed, ok := result.Data[0].(services.TeamMemberModel)
	if !ok {
		writeResponse(w, http.StatusInternalServerError, services.MsgUnexpectedError, nil)
		return
	}

	h.notifications.DeleteNotifications(removed, removed.TeamID)

	writeResult(w, h.teams.GetTeamMembers(removed.TeamID))
}

func (h *TeamHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	h.processInviteChange(w, r, models.MemberStateAccepted)
}

func (h *TeamHandler) DeclineInvite(w http.ResponseWriter, r *http.Request) {
	h.processInviteChange(w, r, models.MemberStateDeclined)
}

func (h *TeamHandler) MyTeams(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.teams.GetMyTeams(middleware.GetUserID(r.Context())))
}

func (h *TeamHandler) UsersToInvite(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	teamID := queryUint(r, "teamId")
	if name == "" || teamID == 0 {
		badRequestResponse(w, services.MsgSearchNameNotProvided)
		return
	}

	writeResult(w, h.teams.GetUsersToInvite(name, teamID, middleware.GetUserID(r.Context())))
}

func (h *TeamHandler) Members(w http.ResponseWriter, r *http.Request) {
	teamID := queryUint(r, "teamId")
	if teamID == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	writeResult(w, h.teams.GetTeamMembers(teamID))
}

// processInviteChange transitions the caller's membership state, deactivates
// the originating notification, notifies the team owner about the outcome
// and responds with the transition result plus the caller's refreshed
// notification list.
func (h *TeamHandler) processInviteChange(w http.ResponseWriter, r *http.Request, newState models.MemberState) {
	var req teamIDRequest
	if !decodeBody(r, &req) || req.TeamID == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	callerID := middleware.GetUserID(r.Context())
	result := h.teams.AcceptDeclineInvite(callerID, req.TeamID, newState)
	if !result.IsSuccess() {
		writeResult(w, result)
		return
	}

	if change, ok := result.Data[0].(services.InviteChangeModel); ok && change.NotificationID > 0 {
		updateResult := h.notifications.UpdateNotification(change.NotificationID, false)
		if updateResult.IsSuccess() {
			notificationType := models.NotificationJoinedTeam
			if newState == models.MemberStateDeclined {
				notificationType = models.NotificationDeclinedInvite
			}
			h.notifications.AddAcceptedDeclinedNotification(callerID, req.TeamID, notificationType)
		}
	}

	refreshed := h.notifications.GetNotifications(callerID)
	writeResponse(w, result.Code, result.Message, refreshed.Data)
}
