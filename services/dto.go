package services

import (
	"errors"
	"strings"
)

// Response / request models exchanged with clients. Entities never leave the
// service layer directly, they are mapped to these.

type UserModel struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	ProfileImage string `json:"profile_image"`
}

func (m UserModel) Validate() error {
	if m.ID == "" {
		return errors.New(MsgObjectIDNotProvided)
	}
	return nil
}

type WeightUnitModel struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type UserDefaultValuesModel struct {
	ID           uint            `json:"id"`
	Sets         int             `json:"sets"`
	Reps         int             `json:"reps"`
	Weight       float64         `json:"weight"`
	Rest         int             `json:"rest"`
	Completed    bool            `json:"completed"`
	MGExerciseID uint            `json:"mg_exercise_id"`
	WeightUnit   WeightUnitModel `json:"weight_unit"`
}

type MuscleGroupModel struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ImageName string `json:"image_name"`
}

type MGExerciseModel struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	MuscleGroupID uint   `json:"muscle_group_id"`
}

func (m MGExerciseModel) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New(MsgExerciseNameRequired)
	}
	if m.MuscleGroupID == 0 {
		return errors.New(MsgObjectIDNotProvided)
	}
	return nil
}

type SetModel struct {
	ID        uint    `json:"id"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Rest      int     `json:"rest"`
	Completed bool    `json:"completed"`
}

type ExerciseModel struct {
	ID            uint       `json:"id"`
	WorkoutID     uint       `json:"workout_id"`
	Name          string     `json:"name"`
	MuscleGroupID uint       `json:"muscle_group_id"`
	MGExerciseID  uint       `json:"mg_exercise_id"`
	Notes         string     `json:"notes"`
	Sets          []SetModel `json:"sets"`
}

func (m ExerciseModel) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New(MsgExerciseNameRequired)
	}
	return nil
}

type WorkoutModel struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	StartDateTime   string          `json:"start_date_time"`
	FinishDateTime  string          `json:"finish_date_time"`
	Template        bool            `json:"template"`
	DurationSeconds int             `json:"duration_seconds"`
	Notes           string          `json:"notes"`
	Exercises       []ExerciseModel `json:"exercises"`
}

func (m WorkoutModel) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New(MsgWorkoutNameRequired)
	}
	return nil
}

type TeamModel struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PrivateNote string `json:"private_note"`
	Image       string `json:"image"`
}

func (m TeamModel) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New(MsgTeamNameRequired)
	}
	return nil
}

type TeamMemberModel struct {
	ID       uint   `json:"id"`
	TeamID   uint   `json:"team_id"`
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Image    string `json:"image"`
	State    string `json:"state"`
}

// InviteChangeModel is returned by AcceptDeclineInvite so the controller can
// deactivate the originating notification.
type InviteChangeModel struct {
	MemberID       uint   `json:"member_id"`
	NotificationID uint   `json:"notification_id"`
	State          string `json:"state"`
}

type NotificationModel struct {
	ID       uint   `json:"id"`
	Type     string `json:"type"`
	TeamID   uint   `json:"team_id"`
	Text     string `json:"text"`
	DateTime string `json:"date_time"`
	IsActive bool   `json:"is_active"`
	Image    string `json:"image"`
}

// JoinTeamNotificationModel is the display-ready detail of a team invite.
type JoinTeamNotificationModel struct {
	ID          uint   `json:"id"`
	Type        string `json:"type"`
	TeamID      uint   `json:"team_id"`
	TeamName    string `json:"team_name"`
	TeamImage   string `json:"team_image"`
	Description string `json:"description"`
}
