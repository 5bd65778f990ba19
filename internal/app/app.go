package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/controller"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/pkg/database"
	"lingua_edu_backend/pkg/logger"
	"lingua_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB
	Router *gin.Engine

	userRepo       *repository.UserRepository
	categoryRepo   *repository.CategoryRepository
	courseRepo     *repository.CourseRepository
	quizRepo       *repository.QuizRepository
	enrollmentRepo *repository.EnrollmentRepository
	resultRepo     *repository.QuizResultRepository
	groupRepo      *repository.GroupRepository

	authService       *service.AuthService
	catalogService    *service.CatalogService
	enrollmentService *service.EnrollmentService
	quizService       *service.QuizService
	contentService    *service.ContentService
	storageService    *service.StorageService

	authController   *controller.AuthController
	courseController *controller.CourseController
	userController   *controller.UserController
	adminController  *controller.AdminController
	healthController *controller.HealthController
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	if err := database.SeedAdmin(db, os.Getenv("LINGUA_EDU_ADMIN_EMAIL"), os.Getenv("LINGUA_EDU_ADMIN_PASSWORD")); err != nil {
		logger.Log.Warn("Admin seeding failed", zap.Error(err))
	}

	monitoring.Init()

	app := &App{
		Config: cfg,
		DB:     db,
	}

	app.initRepositories()
	if err := app.initServices(); err != nil {
		return nil, err
	}
	app.initControllers()
	app.Router = app.setupRouter()

	return app, nil
}

func (a *App) initRepositories() {
	a.userRepo = repository.NewUserRepository(a.DB)
	a.categoryRepo = repository.NewCategoryRepository(a.DB)
	a.courseRepo = repository.NewCourseRepository(a.DB)
	a.quizRepo = repository.NewQuizRepository(a.DB)
	a.enrollmentRepo = repository.NewEnrollmentRepository(a.DB)
	a.resultRepo = repository.NewQuizResultRepository(a.DB)
	a.groupRepo = repository.NewGroupRepository(a.DB)
}

func (a *App) initServices() error {
	a.authService = service.NewAuthService(a.userRepo, a.Config)
	a.catalogService = service.NewCatalogService(a.categoryRepo, a.courseRepo, a.resultRepo)
	a.enrollmentService = service.NewEnrollmentService(a.enrollmentRepo, a.courseRepo)
	a.quizService = service.NewQuizService(a.quizRepo, a.resultRepo)
	a.contentService = service.NewContentService(a.categoryRepo, a.courseRepo, a.quizRepo, a.groupRepo)

	storageService, err := service.NewStorageService(a.Config)
	if err != nil {
		return err
	}
	a.storageService = storageService
	return nil
}

func (a *App) initControllers() {
	a.authController = controller.NewAuthController(a.authService)
	a.courseController = controller.NewCourseController(a.catalogService, a.enrollmentService, a.quizService)
	a.userController = controller.NewUserController(a.enrollmentService, a.authService)
	a.adminController = controller.NewAdminController(a.contentService, a.storageService, a.userRepo)
	a.healthController = controller.NewHealthController(a.DB)
}

// Run starts the HTTP server and blocks until SIGINT or SIGTERM, then
// drains in-flight requests before returning.
func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server starting", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	logger.Log.Info("Server exited")
	return nil
}
