package services

import (
	"errors"
	"strings"

	"fitnessapi/logger"
	"fitnessapi/models"

	"gorm.io/gorm"
)

// TeamService implements the team CRUD and membership lifecycle. Membership
// rows move INVITED -> ACCEPTED or INVITED -> DECLINED, at most one row per
// (team, user) pair.
type TeamService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTeamService(db *gorm.DB, log *logger.Logger) *TeamService {
	return &TeamService{db: db, log: log}
}

// AddTeam creates a team owned by the caller.
func (s *TeamService) AddTeam(data TeamModel, userID string) ActionResult {
	if err := data.Validate(); err != nil {
		return badRequest(err.Error())
	}

	team := models.Team{
		Name:        data.Name,
		Description: data.Description,
		PrivateNote: data.PrivateNote,
		Image:       decodeImage(data.Image),
		UserID:      userID,
	}

	if err := s.db.Create(&team).Error; err != nil {
		s.log.Errorw("failed to create team", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return created(MsgTeamAdded, toTeamModel(team))
}

// UpdateTeam overwrites the team fields. Owner only.
func (s *TeamService) UpdateTeam(data TeamModel, userID string) ActionResult {
	if err := data.Validate(); err != nil {
		return badRequest(err.Error())
	}

	var team models.Team
	err := s.db.Where("id = ? AND user_id = ?", data.ID, userID).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgTeamNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch team", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	team.Name = data.Name
	team.Description = data.Description
	team.PrivateNote = data.PrivateNote
	team.Image = decodeImage(data.Image)

	if err := s.db.Save(&team).Error; err != nil {
		s.log.Errorw("failed to update team", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgTeamUpdated, toTeamModel(team))
}

// DeleteTeam removes the team with its memberships and notifications.
// Owner only.
func (s *TeamService) DeleteTeam(teamID uint, userID string) ActionResult {
	var team models.Team
	err := s.db.Where("id = ? AND user_id = ?", teamID, userID).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgTeamNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch team", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	if err := s.db.Where("team_id = ?", teamID).Delete(&models.TeamMember{}).Error; err != nil {
		s.log.Errorw("failed to delete team members", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}
	if err := s.db.Where("team_id = ?", teamID).Delete(&models.Notification{}).Error; err != nil {
		s.log.Errorw("failed to delete team notifications", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}
	if err := s.db.Delete(&team).Error; err != nil {
		s.log.Errorw("failed to delete team", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgTeamDeleted)
}

// LeaveTeam removes the caller's ACCEPTED membership row. Pending invites
// are not covered here, declining them goes through AcceptDeclineInvite or
// the notification delete cascade.
func (s *TeamService) LeaveTeam(teamID uint, userID string) ActionResult {
	var member models.TeamMember
	err := s.db.Where("team_id = ? AND user_id = ? AND state = ?",
		teamID, userID, models.MemberStateAccepted).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgMemberNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch team member", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	if err := s.db.Delete(&member).Error; err != nil {
		s.log.Errorw("failed to delete team member", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgTeamLeft)
}

// InviteMember inserts an INVITED membership row. A second invite for the
// same (team, user) pair is rejected.
func (s *TeamService) InviteMember(teamID uint, userID string) ActionResult {
	var team models.Team
	err := s.db.First(&team, "id = ?", teamID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgTeamNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch team", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	var existing models.TeamMember
	err = s.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&existing).Error
	if err == nil {
		return badRequest(MsgMemberAlreadyInvited)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Errorw("failed to check existing membership", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	member := models.TeamMember{
		TeamID: teamID,
		UserID: userID,
		State:  models.MemberStateInvited,
	}
	if err := s.db.Create(&member).Error; err != nil {
		s.log.Errorw("failed to create team member", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	profile := s.profileFor(userID)
	return created(MsgMemberInvited, toTeamMemberModel(member, profile))
}

// RemoveMember deletes the membership row. The returned model carries the
// affected team id so the controller can refresh the member list and purge
// notifications.
func (s *TeamService) RemoveMember(data TeamMemberModel) ActionResult {
	if data.ID == 0 {
		return badRequest(MsgObjectIDNotProvided)
	}

	var member models.TeamMember
	err := s.db.First(&member, "id = ?", data.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgMemberNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch team member", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	if err := s.db.Delete(&member).Error; err != nil {
		s.log.Errorw("failed to delete team member", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	profile := s.profileFor(member.UserID)
	return success(MsgMemberRemoved, toTeamMemberModel(member, profile))
}

// AcceptDeclineInvite transitions the membership state and reports the id of
// the originating invite notification so the controller can deactivate it.
func (s *TeamService) AcceptDeclineInvite(userID string, teamID uint, newState models.MemberState) ActionResult {
	if newState != models.MemberStateAccepted && newState != models.MemberStateDeclined {
		return badRequest(MsgObjectIDNotProvided)
	}

	var member models.TeamMember
	err := s.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgMemberNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch team member", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	member.State = newState
	if err := s.db.Save(&member).Error; err != nil {
		s.log.Errorw("failed to update team member", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	// Find the invite notification that triggered this, if still present
	var notificationID uint
	var notification models.Notification
	err = s.db.Where("receiver_user_id = ? AND team_id = ? AND type = ? AND is_active = ?",
		userID, teamID, models.NotificationInvitedToTeam, true).First(&notification).Error
	if err == nil {
		notificationID = notification.ID
	}

	message := MsgInviteAccepted
	if newState == models.MemberStateDeclined {
		message = MsgInviteDeclined
	}

	return success(message, InviteChangeModel{
		MemberID:       member.ID,
		NotificationID: notificationID,
		State:          string(newState),
	})
}

// GetMyTeams returns the teams owned by the caller.
func (s *TeamService) GetMyTeams(userID string) ActionResult {
	var teams []models.Team
	if err := s.db.Where("user_id = ?", userID).Find(&teams).Error; err != nil {
		s.log.Errorw("failed to fetch teams", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	data := make([]interface{}, 0, len(teams))
	for _, t := range teams {
		data = append(data, toTeamModel(t))
	}
	return successList(data)
}

// GetTeamMembers returns the membership rows with profile display data.
func (s *TeamService) GetTeamMembers(teamID uint) ActionResult {
	var members []models.TeamMember
	if err := s.db.Where("team_id = ?", teamID).Find(&members).Error; err != nil {
		s.log.Errorw("failed to fetch team members", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	data := make([]interface{}, 0, len(members))
	for _, m := range members {
		data = append(data, toTeamMemberModel(m, s.profileFor(m.UserID)))
	}
	return successList(data)
}

// GetUsersToInvite searches user profiles by name, excluding the caller and
// anyone already linked to the team.
func (s *TeamService) GetUsersToInvite(name string, teamID uint, userID string) ActionResult {
	if strings.TrimSpace(name) == "" || teamID == 0 {
		return badRequest(MsgSearchNameNotProvided)
	}

	var profiles []models.UserProfile
	err := s.db.
		Where("full_name ILIKE ?", "%"+name+"%").
		Where("user_id <> ?", userID).
		Where("user_id NOT IN (?)", s.db.Model(&models.TeamMember{}).Select("user_id").Where("team_id = ?", teamID)).
		Find(&profiles).Error
	if err != nil {
		s.log.Errorw("failed to search users to invite", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	data := make([]interface{}, 0, len(profiles))
	for _, p := range profiles {
		data = append(data, TeamMemberModel{
			TeamID:   teamID,
			UserID:   p.UserID,
			FullName: p.FullName,
			Image:    encodeImage(p.ProfileImage),
		})
	}
	return successList(data)
}

// profileFor returns the profile for display purposes, zero value when the
// lookup fails.
func (s *TeamService) profileFor(userID string) models.UserProfile {
	var profile models.UserProfile
	s.db.Where("user_id = ?", userID).First(&profile)
	return profile
}
