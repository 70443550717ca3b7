package services

import (
	"encoding/base64"
	"time"

	"fitnessapi/models"
)

// Pure mapping functions from gorm entities to response models.

func toUserModel(user models.User, profile models.UserProfile) UserModel {
	return UserModel{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     profile.FullName,
		ProfileImage: encodeImage(profile.ProfileImage),
	}
}

func toWeightUnitModel(unit models.WeightUnit) WeightUnitModel {
	return WeightUnitModel{ID: unit.ID, Text: unit.Text}
}

func toUserDefaultValuesModel(v models.UserDefaultValue, unit models.WeightUnit) UserDefaultValuesModel {
	return UserDefaultValuesModel{
		ID:           v.ID,
		Sets:         v.Sets,
		Reps:         v.Reps,
		Weight:       v.Weight,
		Rest:         v.Rest,
		Completed:    v.Completed,
		MGExerciseID: v.MGExerciseID,
		WeightUnit:   toWeightUnitModel(unit),
	}
}

func toMuscleGroupModel(mg models.MuscleGroup) MuscleGroupModel {
	return MuscleGroupModel{ID: mg.ID, Name: mg.Name, ImageName: mg.ImageName}
}

func toMGExerciseModel(e models.MGExercise) MGExerciseModel {
	return MGExerciseModel{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		MuscleGroupID: e.MuscleGroupID,
	}
}

func toSetModel(s models.Set) SetModel {
	return SetModel{ID: s.ID, Reps: s.Reps, Weight: s.Weight, Rest: s.Rest, Completed: s.Completed}
}

func toExerciseModel(e models.Exercise) ExerciseModel {
	sets := make([]SetModel, 0, len(e.Sets))
	for _, s := range e.Sets {
		sets = append(sets, toSetModel(s))
	}
	return ExerciseModel{
		ID:            e.ID,
		WorkoutID:     e.WorkoutID,
		Name:          e.Name,
		MuscleGroupID: e.MuscleGroupID,
		MGExerciseID:  e.MGExerciseID,
		Notes:         e.Notes,
		Sets:          sets,
	}
}

// toWorkoutModel expects Exercises and their Sets to be preloaded.
func toWorkoutModel(w models.Workout) WorkoutModel {
	exercises := make([]ExerciseModel, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		exercises = append(exercises, toExerciseModel(e))
	}
	return WorkoutModel{
		ID:              w.ID,
		Name:            w.Name,
		StartDateTime:   w.StartDateTime.Format(time.RFC3339),
		FinishDateTime:  formatOptionalTime(w.FinishDateTime),
		Template:        w.Template,
		DurationSeconds: w.DurationSeconds,
		Notes:           w.Notes,
		Exercises:       exercises,
	}
}

func toTeamModel(t models.Team) TeamModel {
	return TeamModel{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		PrivateNote: t.PrivateNote,
		Image:       encodeImage(t.Image),
	}
}

func toTeamMemberModel(tm models.TeamMember, profile models.UserProfile) TeamMemberModel {
	return TeamMemberModel{
		ID:       tm.ID,
		TeamID:   tm.TeamID,
		UserID:   tm.UserID,
		FullName: profile.FullName,
		Image:    encodeImage(profile.ProfileImage),
		State:    string(tm.State),
	}
}

func toNotificationModel(n models.Notification, senderImage []byte) NotificationModel {
	return NotificationModel{
		ID:       n.ID,
		Type:     string(n.Type),
		TeamID:   n.TeamID,
		Text:     n.Text,
		DateTime: n.DateTime.Format(displayDateFormat),
		IsActive: n.IsActive,
		Image:    encodeImage(senderImage),
	}
}

func encodeImage(image []byte) string {
	if len(image) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(image)
}

func decodeImage(encoded string) []byte {
	if encoded == "" {
		return nil
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	return decoded
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
