package bootstrap

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"noteful-be/internal/config"
	"noteful-be/internal/controller"
	"noteful-be/internal/pkg/logger"
	"noteful-be/internal/pkg/serverutils"
	"noteful-be/internal/repository/unitofwork"
	"noteful-be/internal/service"
)

type Container struct {
	Logger logger.ILogger

	// JwtMiddleware guards every resource route.
	JwtMiddleware fiber.Handler

	AuthController   controller.IAuthController
	FolderController controller.IFolderController
	TagController    controller.ITagController
	NoteController   controller.INoteController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokenExpiry := time.Duration(cfg.Auth.TokenExpiryHours) * time.Hour

	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret, tokenExpiry)
	folderService := service.NewFolderService(uowFactory)
	tagService := service.NewTagService(uowFactory)
	noteService := service.NewNoteService(uowFactory)

	return &Container{
		Logger:           sysLogger,
		JwtMiddleware:    serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret),
		AuthController:   controller.NewAuthController(authService),
		FolderController: controller.NewFolderController(folderService),
		TagController:    controller.NewTagController(tagService),
		NoteController:   controller.NewNoteController(noteService),
	}
}
