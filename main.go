package main

import (
	"log"

	"github.com/BakariSp/Zero-AI-backend-sub000/config"
	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/routers/achievementRoutes"
	"github.com/BakariSp/Zero-AI-backend-sub000/routers/authRoutes"
	"github.com/BakariSp/Zero-AI-backend-sub000/routers/cardRoutes"
	"github.com/BakariSp/Zero-AI-backend-sub000/routers/courseRoutes"
	"github.com/BakariSp/Zero-AI-backend-sub000/routers/dailyLogRoutes"
	"github.com/BakariSp/Zero-AI-backend-sub000/routers/learningPathRoutes"
	"github.com/BakariSp/Zero-AI-backend-sub000/routers/plannerRoutes"
	"github.com/BakariSp/Zero-AI-backend-sub000/routers/sectionRoutes"
	"github.com/BakariSp/Zero-AI-backend-sub000/routers/usageRoutes"
	"github.com/BakariSp/Zero-AI-backend-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	learningPathRoutes.SetupLearningPathRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	sectionRoutes.SetupSectionRoutes(app)
	cardRoutes.SetupCardRoutes(app)
	achievementRoutes.SetupAchievementRoutes(app)
	usageRoutes.SetupUsageRoutes(app)
	dailyLogRoutes.SetupDailyLogRoutes(app)
	plannerRoutes.SetupPlannerRoutes(app)

	scheduler := utils.InitializeUsageScheduler()
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
