package models

import (
	"time"
)

type Team struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"not null;size:100" json:"name"`
	Description string    `gorm:"size:4000" json:"description"`
	PrivateNote string    `gorm:"size:4000" json:"private_note"`
	Image       []byte    `json:"-"`
	UserID      string    `gorm:"not null;index;size:36" json:"user_id"`
}

// MemberState is the lifecycle state of a team membership.
type MemberState string

const (
	MemberStateInvited  MemberState = "INVITED"
	MemberStateAccepted MemberState = "ACCEPTED"
	MemberStateDeclined MemberState = "DECLINED"
)

type TeamMember struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	TeamID    uint        `gorm:"not null;index:idx_team_user,unique" json:"team_id"`
	Team      *Team       `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	UserID    string      `gorm:"not null;index:idx_team_user,unique;size:36" json:"user_id"`
	State     MemberState `gorm:"not null;size:20" json:"state"`
}
