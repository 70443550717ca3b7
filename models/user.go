package models

import (
	"time"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Email        string    `gorm:"uniqueIndex;not null;size:256" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
}

type UserProfile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserID       string    `gorm:"uniqueIndex;not null;size:36" json:"user_id"`
	User         *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FullName     string    `gorm:"size:200" json:"full_name"`
	ProfileImage []byte    `json:"-"`
}

// UserDefaultValue holds the per-user exercise defaults. The row with
// MGExerciseID = 0 is the user-wide fallback, rows with MGExerciseID > 0
// override it for a specific muscle group exercise.
type UserDefaultValue struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	UserID       string     `gorm:"not null;index;size:36" json:"user_id"`
	MGExerciseID uint       `gorm:"not null;default:0" json:"mg_exercise_id"`
	Sets         int        `gorm:"not null" json:"sets"`
	Reps         int        `gorm:"not null" json:"reps"`
	Weight       float64    `gorm:"not null" json:"weight"`
	Rest         int        `gorm:"not null" json:"rest"`
	Completed    bool       `gorm:"default:false" json:"completed"`
	WeightUnitID uint       `gorm:"not null" json:"weight_unit_id"`
	WeightUnit   WeightUnit `gorm:"foreignKey:WeightUnitID" json:"weight_unit,omitempty"`
}

const (
	WeightUnitKg  = "kg"
	WeightUnitLbs = "lbs"
)

type WeightUnit struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"uniqueIndex;not null;size:10" json:"text"`
}
