package main

import (
	"net/http"

	"fitnessapi/config"
	"fitnessapi/database"
	"fitnessapi/handlers"
	"fitnessapi/logger"
	"fitnessapi/middleware"
	"fitnessapi/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.Environment)
	defer func() { _ = log.Sync() }()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	if err := database.Init(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	db := database.GetDB()

	// Initialize services
	exerciseService := services.NewExerciseService(db, log)
	workoutService := services.NewWorkoutService(db, exerciseService, log)
	muscleGroupService := services.NewMuscleGroupService(db, log)
	teamService := services.NewTeamService(db, log)
	notificationService := services.NewNotificationService(db, log)
	userService := services.NewUserService(db, cfg, log)
	profileService := services.NewUserProfileService(db, log)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, profileService, workoutService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService, workoutService, muscleGroupService)
	teamHandler := handlers.NewTeamHandler(teamService, notificationService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestLogger(log))

	// Public routes
	router.Post("/api/user/register", userHandler.Register)
	router.Post("/api/user/login", userHandler.Login)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)

		r.Post("/api/user/change-password", userHandler.ChangePassword)
		r.Post("/api/user/profile/update", userHandler.UpdateProfile)
		r.Get("/api/user/default-values", userHandler.GetDefaultValues)
		r.Post("/api/user/default-values", userHandler.UpdateDefaultValues)

		r.Post("/api/workout/add", workoutHandler.Add)
		r.Post("/api/workout/update", workoutHandler.Update)
		r.Post("/api/workout/delete", workoutHandler.Delete)
		r.Get("/api/workout/get", workoutHandler.Get)
		r.Get("/api/workout/latest", workoutHandler.Latest)
		r.Get("/api/workout/weight-units", workoutHandler.WeightUnits)

		r.Post("/api/exercise/add", exerciseHandler.Add)
		r.Post("/api/exercise/update", exerciseHandler.Update)
		r.Post("/api/exercise/delete", exerciseHandler.Delete)
		r.Post("/api/mg-exercise/add", exerciseHandler.AddMGExercise)
		r.Post("/api/mg-exercise/update", exerciseHandler.UpdateMGExercise)
		r.Post("/api/mg-exercise/delete", exerciseHandler.DeleteMGExercise)
		r.Get("/api/mg-exercise/get", exerciseHandler.GetMGExercises)
		r.Get("/api/muscle-group/get", exerciseHandler.MuscleGroups)

		r.Post("/api/team/add", teamHandler.Add)
		r.Post("/api/team/update", teamHandler.Update)
		r.Post("/api/team/delete", teamHandler.Delete)
		r.Post("/api/team/leave", teamHandler.Leave)
		r.Post("/api/team/invite-member", teamHandler.InviteMember)
		r.Post("/api/team/remove-member", teamHandler.RemoveMember)
		r.Post("/api/team/accept-invite", teamHandler.AcceptInvite)
		r.Post("/api/team/decline-invite", teamHandler.DeclineInvite)
		r.Get("/api/team/my-teams", teamHandler.MyTeams)
		r.Get("/api/team/users-to-invite", teamHandler.UsersToInvite)
		r.Get("/api/team/members", teamHandler.Members)

		r.Get("/api/notification/get", notificationHandler.Get)
		r.Post("/api/notification/review", notificationHandler.Review)
		r.Post("/api/notification/delete", notificationHandler.Delete)
		r.Get("/api/notification/has-new", notificationHandler.HasNew)
		r.Get("/api/notification/join-team-details", notificationHandler.JoinTeamDetails)
	})

	log.Infof("Server starting on port %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
