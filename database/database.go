package database

import (
	"fitnessapi/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	// Auto migrate the schema
	err = DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.UserDefaultValue{},
		&models.WeightUnit{},
		&models.MuscleGroup{},
		&models.MGExercise{},
		&models.Workout{},
		&models.Exercise{},
		&models.Set{},
		&models.Team{},
		&models.TeamMember{},
		&models.Notification{},
	)
	if err != nil {
		return err
	}

	if err := seedWeightUnits(); err != nil {
		return err
	}

	return seedMuscleGroups()
}

// seedWeightUnits makes sure the two supported units exist. Registration
// depends on the kg row being present.
func seedWeightUnits() error {
	var count int64
	DB.Model(&models.WeightUnit{}).Count(&count)
	if count > 0 {
		return nil
	}

	units := []models.WeightUnit{
		{Text: models.WeightUnitKg},
		{Text: models.WeightUnitLbs},
	}
	return DB.Create(&units).Error
}

// seedMuscleGroups creates the default muscle groups visible to every user.
func seedMuscleGroups() error {
	var count int64
	DB.Model(&models.MuscleGroup{}).Where("user_id IS NULL").Count(&count)
	if count > 0 {
		return nil
	}

	groups := []models.MuscleGroup{
		{Name: "Abs", ImageName: "icon_mg_abs"},
		{Name: "Back", ImageName: "icon_mg_back"},
		{Name: "Biceps", ImageName: "icon_mg_biceps"},
		{Name: "Chest", ImageName: "icon_mg_chest"},
		{Name: "Legs", ImageName: "icon_mg_legs"},
		{Name: "Shoulders", ImageName: "icon_mg_shoulders"},
		{Name: "Triceps", ImageName: "icon_mg_triceps"},
	}
	return DB.Create(&groups).Error
}

func GetDB() *gorm.DB {
	return DB
}
