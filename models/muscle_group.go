package models

import (
	"time"
)

// MuscleGroup with a nil UserID is a default group visible to everyone,
// otherwise it belongs to the user who created it.
type MuscleGroup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	ImageName string    `gorm:"size:100" json:"image_name"`
	UserID    *string   `gorm:"index;size:36" json:"user_id"`
}

// MGExercise is an exercise definition within a muscle group, either one of
// the defaults (UserID nil) or a user-created one.
type MGExercise struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Name          string       `gorm:"not null;size:100" json:"name"`
	Description   string       `gorm:"size:4000" json:"description"`
	MuscleGroupID uint         `gorm:"not null;index" json:"muscle_group_id"`
	MuscleGroup   *MuscleGroup `gorm:"foreignKey:MuscleGroupID" json:"muscle_group,omitempty"`
	UserID        *string      `gorm:"index;size:36" json:"user_id"`
}
