package models

import (
	"time"
)

type Workout struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	UserID          string     `gorm:"not null;index;size:36" json:"user_id"`
	Name            string     `gorm:"not null;size:100" json:"name"`
	StartDateTime   time.Time  `gorm:"not null" json:"start_date_time"`
	FinishDateTime  *time.Time `json:"finish_date_time"`
	Template        bool       `gorm:"default:false" json:"template"`
	DurationSeconds int        `gorm:"default:0" json:"duration_seconds"`
	Notes           string     `gorm:"size:4000" json:"notes"`
	Exercises       []Exercise `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
}

type Exercise struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	WorkoutID     uint         `gorm:"not null;index" json:"workout_id"`
	Name          string       `gorm:"not null;size:100" json:"name"`
	MuscleGroupID uint         `gorm:"index" json:"muscle_group_id"`
	MuscleGroup   *MuscleGroup `gorm:"foreignKey:MuscleGroupID" json:"muscle_group,omitempty"`
	MGExerciseID  uint         `gorm:"index" json:"mg_exercise_id"`
	Notes         string       `gorm:"size:4000" json:"notes"`
	Sets          []Set        `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"sets,omitempty"`
}

type Set struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ExerciseID uint    `gorm:"not null;index" json:"exercise_id"`
	Reps       int     `gorm:"not null" json:"reps"`
	Weight     float64 `gorm:"not null" json:"weight"`
	Rest       int     `gorm:"not null" json:"rest"`
	Completed  bool    `gorm:"default:false" json:"completed"`
}
