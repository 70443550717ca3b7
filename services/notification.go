package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fitnessapi/logger"
	"fitnessapi/models"

	"gorm.io/gorm"
)

// NotificationService manages notification rows created as side effects of
// team actions. Notifications are rows, not a message bus: no queueing, no
// delivery guarantees.
type NotificationService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNotificationService(db *gorm.DB, log *logger.Logger) *NotificationService {
	return &NotificationService{db: db, log: log}
}

// AddTeamInviteNotification notifies the invitee about a team invitation.
func (s *NotificationService) AddTeamInviteNotification(receiverUserID, senderUserID string, teamID uint) ActionResult {
	teamName := unknownTeamName

	var team models.Team
	if err := s.db.First(&team, "id = ?", teamID).Error; err == nil {
		teamName = team.Name
	}

	notification := models.Notification{
		Type:           models.NotificationInvitedToTeam,
		ReceiverUserID: receiverUserID,
		SenderUserID:   senderUserID,
		TeamID:         teamID,
		Text:           fmt.Sprintf(notificationInviteText, teamName),
		DateTime:       time.Now(),
		IsActive:       true,
	}

	return s.addNotification(notification)
}

// AddAcceptedDeclinedNotification notifies the team owner that the sender
// accepted or declined the invitation.
func (s *NotificationService) AddAcceptedDeclinedNotification(senderUserID string, teamID uint, notificationType models.NotificationType) ActionResult {
	senderName := unknownUserName

	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", senderUserID).First(&profile).Error; err == nil && profile.FullName != "" {
		senderName = profile.FullName
	}

	var team models.Team
	if err := s.db.First(&team, "id = ?", teamID).Error; err != nil {
		return notFound(MsgFailedToFindTeamOwner)
	}

	var text string
	if notificationType == models.NotificationJoinedTeam {
		text = fmt.Sprintf(notificationJoinedText, senderName, team.Name)
	} else {
		text = fmt.Sprintf(notificationDeclineText, senderName, team.Name)
	}

	notification := models.Notification{
		Type:           notificationType,
		ReceiverUserID: team.UserID,
		SenderUserID:   senderUserID,
		TeamID:         teamID,
		Text:           text,
		DateTime:       time.Now(),
		IsActive:       true,
	}

	return s.addNotification(notification)
}

// UpdateNotification sets the active flag of a single notification.
func (s *NotificationService) UpdateNotification(id uint, isActive bool) ActionResult {
	var notification models.Notification
	err := s.db.First(&notification, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgNotificationNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch notification", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	notification.IsActive = isActive
	if err := s.db.Save(&notification).Error; err != nil {
		s.log.Errorw("failed to update notification", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgSuccess)
}

// DeleteNotification removes a notification. Deleting an active team invite
// also removes the pending membership row and notifies the team owner with a
// decline.
func (s *NotificationService) DeleteNotification(notificationID uint, userID string) ActionResult {
	if notificationID == 0 {
		return badRequest(MsgObjectIDNotProvided)
	}

	var notification models.Notification
	err := s.db.First(&notification, "id = ?", notificationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgNotificationNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch notification", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	if notification.IsActive && notification.Type == models.NotificationInvitedToTeam {
		var member models.TeamMember
		err := s.db.Where("team_id = ? AND user_id = ? AND state = ?",
			notification.TeamID, userID, models.MemberStateInvited).First(&member).Error
		if err == nil {
			// Dismissing a pending invite counts as declining it
			if err := s.db.Delete(&member).Error; err != nil {
				s.log.Errorw("failed to delete team member", "error", err)
				return unexpectedError(MsgUnexpectedError)
			}
			s.AddAcceptedDeclinedNotification(userID, member.TeamID, models.NotificationDeclinedInvite)
		}
	}

	if err := s.db.Delete(&notification).Error; err != nil {
		s.log.Errorw("failed to delete notification", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgNotificationDeleted)
}

// DeleteNotifications removes every notification tied to the (team, user)
// pair of a removed membership.
func (s *NotificationService) DeleteNotifications(data TeamMemberModel, teamID uint) ActionResult {
	err := s.db.Where("team_id = ? AND (sender_user_id = ? OR receiver_user_id = ?)",
		teamID, data.UserID, data.UserID).Delete(&models.Notification{}).Error
	if err != nil {
		s.log.Errorw("failed to delete notifications", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgSuccess)
}

// GetNotifications returns the user's notifications, newest first.
func (s *NotificationService) GetNotifications(userID string) ActionResult {
	var notifications []models.Notification
	err := s.db.Where("receiver_user_id = ?", userID).
		Order("date_time DESC").Find(&notifications).Error
	if err != nil {
		s.log.Errorw("failed to fetch notifications", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	data := make([]interface{}, 0, len(notifications))
	for _, n := range notifications {
		var sender models.UserProfile
		s.db.Where("user_id = ?", n.SenderUserID).First(&sender)
		data = append(data, toNotificationModel(n, sender.ProfileImage))
	}
	return successList(data)
}

// HasNotification reports whether the user has any active notification.
func (s *NotificationService) HasNotification(userID string) ActionResult {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("receiver_user_id = ? AND is_active = ?", userID, true).Count(&count).Error
	if err != nil {
		s.log.Errorw("failed to count notifications", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	return success(MsgSuccess, count > 0)
}

// GetJoinTeamNotificationDetails builds the display-ready detail of a team
// invite notification.
func (s *NotificationService) GetJoinTeamNotificationDetails(notificationID uint) ActionResult {
	if notificationID == 0 {
		return badRequest(MsgObjectIDNotProvided)
	}

	var notification models.Notification
	err := s.db.First(&notification, "id = ?", notificationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(MsgNotificationNotFound)
	}
	if err != nil {
		s.log.Errorw("failed to fetch notification", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}

	formattedDate := notification.DateTime.Format(displayDateFormat)
	model := JoinTeamNotificationModel{
		ID:     notification.ID,
		Type:   string(models.NotificationInvitedToTeam),
		TeamID: notification.TeamID,
	}

	var team models.Team
	if err := s.db.First(&team, "id = ?", notification.TeamID).Error; err == nil {
		model.TeamName = team.Name
		model.TeamImage = encodeImage(team.Image)
	}

	var sender models.UserProfile
	if err := s.db.Where("user_id = ?", notification.SenderUserID).First(&sender).Error; err == nil {
		if strings.TrimSpace(sender.FullName) != "" {
			model.Description = fmt.Sprintf(notificationAskAcceptText, sender.FullName, formattedDate)
		} else {
			model.Description = fmt.Sprintf(notificationAskAcceptNoSenderText, formattedDate)
		}
	}

	return success(MsgSuccess, model)
}

func (s *NotificationService) addNotification(notification models.Notification) ActionResult {
	if err := s.db.Create(&notification).Error; err != nil {
		s.log.Errorw("failed to create notification", "error", err)
		return unexpectedError(MsgUnexpectedError)
	}
	return created(MsgSuccess, toNotificationModel(notification, nil))
}
