package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"courseweb/client"
	"courseweb/config"
	"courseweb/logger"
	"courseweb/middleware"
	adminRoutes "courseweb/routers/adminRoutes"
	authRoutes "courseweb/routers/authRoutes"
	paymentRoutes "courseweb/routers/paymentRoutes"
	publicRoutes "courseweb/routers/publicRoutes"
	teacherRoutes "courseweb/routers/teacherRoutes"
	"courseweb/storage"
	"courseweb/utils"
	"courseweb/views"
)

func main() {
	config.LoadConfig()
	logger.InitLogger()

	store, err := storage.Connect(config.AppConfig.SessionDBName)
	if err != nil {
		log.Fatalf("Failed to open session storage: %v", err)
	}

	middleware.InitSessionStore(store)
	client.Init(config.AppConfig.ApiBaseURL, time.Duration(config.AppConfig.RequestTimeoutSec)*time.Second)

	engine := html.New("./templates", ".html")
	engine.AddFunc("lessonIcon", views.LessonTypeIcon)
	engine.AddFunc("lessonName", views.LessonTypeName)
	engine.AddFunc("formatDuration", views.FormatDuration)
	engine.AddFunc("lessonDuration", views.FormatLessonDuration)
	engine.AddFunc("timeAgo", views.TimeAgo)
	engine.AddFunc("notifIcon", views.NotificationIcon)

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	// Enable the built-in logger middleware to log all requests
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	publicRoutes.SetupPublicRoutes(app)
	authRoutes.SetupAuthRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	teacherRoutes.SetupTeacherRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	janitor := utils.InitializeSessionJanitor(store, config.AppConfig.SessionGCSpec)
	defer janitor.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
