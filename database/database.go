package database

import (
	"fmt"
	"log"

	"github.com/BakariSp/Zero-AI-backend-sub000/config"
	"github.com/BakariSp/Zero-AI-backend-sub000/models"
	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a database connection based on DB_DIALECT
func ConnectDb() {
	cfg := config.AppConfig

	var dialector gorm.Dialector
	switch cfg.DBDialect {
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
		)
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBName)
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", cfg.DBDialect, err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	RunMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.UserDailyUsage{},
		&models.DailyLog{},
		&models.GenerationTask{},
		&pathModels.LearningPath{},
		&pathModels.LearningPathCourse{},
		&pathModels.UserLearningPath{},
		&pathModels.Course{},
		&pathModels.CourseSectionAssociation{},
		&pathModels.UserCourse{},
		&pathModels.CourseSection{},
		&pathModels.SectionCard{},
		&pathModels.UserSection{},
		&pathModels.UserSectionCard{},
		&pathModels.Card{},
		&pathModels.UserCard{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
