package models

import (
	"time"
)

// NotificationType is the closed set of notification kinds.
type NotificationType string

const (
	NotificationInvitedToTeam  NotificationType = "INVITED_TO_TEAM"
	NotificationJoinedTeam     NotificationType = "JOINED_TEAM"
	NotificationDeclinedInvite NotificationType = "DECLINED_TEAM_INVITATION"
)

type Notification struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	ReceiverUserID string           `gorm:"not null;index;size:36" json:"receiver_user_id"`
	SenderUserID   string           `gorm:"not null;index;size:36" json:"sender_user_id"`
	Type           NotificationType `gorm:"not null;size:40" json:"type"`
	TeamID         uint             `gorm:"index" json:"team_id"`
	Text           string           `gorm:"size:4000" json:"text"`
	DateTime       time.Time        `gorm:"not null" json:"date_time"`
	IsActive       bool             `gorm:"default:true" json:"is_active"`
}
