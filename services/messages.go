package services

// User facing response messages.
const (
	MsgSuccess         = "Success"
	MsgUnexpectedError = "Unexpected error occurred while processing your request"

	MsgRegisterFailed      = "Email and password must be provided"
	MsgInvalidEmail        = "Invalid email address"
	MsgPasswordTooShort    = "Password must be at least 8 characters long"
	MsgEmailAlreadyExists  = "User with this email already exists"
	MsgUserRegistered      = "User registered successfully"
	MsgLoginFailed         = "Invalid email or password"
	MsgChangePasswordFail  = "Old and new password must be provided"
	MsgIncorrectPassword   = "Current password is incorrect"
	MsgPasswordChanged     = "Password changed successfully"
	MsgProfileNotFound     = "Failed to update user profile"
	MsgProfileUpdated      = "User profile updated"
	MsgDefValuesNotFound   = "Failed to fetch default values"
	MsgDefValuesUpdateFail = "Failed to update default values"
	MsgDefValuesUpdated    = "Default values updated"

	MsgWorkoutNameRequired = "Workout name is required"
	MsgWorkoutNotFound     = "Workout does not exist"
	MsgWorkoutAdded        = "Workout added"
	MsgWorkoutUpdated      = "Workout updated"
	MsgWorkoutDeleted      = "Workout deleted"
	MsgInvalidDateFormat   = "Invalid date format"
	MsgNoWeightUnits       = "Failed to fetch weight units"

	MsgExerciseNameRequired = "Exercise name is required"
	MsgExerciseNotFound     = "Exercise does not exist"
	MsgMGExerciseNotFound   = "Muscle group exercise does not exist"
	MsgNoMuscleGroups       = "No muscle groups found"

	MsgObjectIDNotProvided   = "Object id not provided"
	MsgSearchNameNotProvided = "Search name not provided"
	MsgTeamNameRequired      = "Team name is required"
	MsgTeamNotFound          = "Team does not exist"
	MsgTeamAdded             = "Team added"
	MsgTeamUpdated           = "Team updated"
	MsgTeamDeleted           = "Team deleted"
	MsgTeamLeft              = "You left the team"
	MsgMemberNotFound        = "Team member record does not exist"
	MsgMemberAlreadyInvited  = "User is already invited or a member of this team"
	MsgMemberInvited         = "User invited"
	MsgMemberRemoved         = "Member removed"
	MsgInviteAccepted        = "Team invitation accepted"
	MsgInviteDeclined        = "Team invitation declined"

	MsgNotificationNotFound  = "Failed to get notification details"
	MsgNotificationDeleted   = "Notification deleted"
	MsgFailedToSendInvite    = "Failed to send notification"
	MsgFailedToFindTeamOwner = "Failed to find team owner"
)

// Notification text templates.
const (
	notificationInviteText  = "You have been invited to join team \"%s\""
	notificationJoinedText  = "%s joined team \"%s\""
	notificationDeclineText = "%s declined invitation to join team \"%s\""

	notificationAskAcceptText         = "%s asks you to join the team. Invitation sent on %s. Do you accept?"
	notificationAskAcceptNoSenderText = "You have been asked to join the team. Invitation sent on %s. Do you accept?"

	unknownTeamName = "Unknown"
	unknownUserName = "Unknown user"
)

// displayDateFormat is how timestamps are rendered in notification details.
const displayDateFormat = "02 Jan 2006"
