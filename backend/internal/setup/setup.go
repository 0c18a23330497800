package setup

import (
	"fmt"

	"github.com/threads-be/threads/backend/internal/handler"
	"github.com/threads-be/threads/backend/internal/imagehost"
	backendmw "github.com/threads-be/threads/backend/internal/middleware"
	"github.com/threads-be/threads/backend/internal/service"
	"github.com/threads-be/threads/backend/internal/storage/fs"
	"github.com/threads-be/threads/backend/internal/storage/pg"
	"github.com/threads-be/threads/shared/config"
	"github.com/threads-be/threads/shared/jwt"
	mw "github.com/threads-be/threads/shared/middleware"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Files          *fs.Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	Upload         *backendmw.Upload
	Jwt            jwt.JwtService
	Config         *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	files, err := fs.New(cfg.Public.UploadsDir)
	if err != nil {
		storage.Cleanup()
		return nil, fmt.Errorf("uploads dir: %w", err)
	}

	images, err := imagehost.New(cfg)
	if err != nil {
		storage.Cleanup()
		return nil, fmt.Errorf("image host: %w", err)
	}

	return Wire(cfg, storage, files, images), nil
}

// Wire builds services and handlers over already opened storages.
func Wire(cfg *config.Config, storage *pg.Storage, files *fs.Storage, images service.ImageHost) *Dependencies {
	jwt := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwt)
	thread := service.NewThread(storage, images, files)
	reply := service.NewReply(storage, images)
	like := service.NewLike(storage)
	follow := service.NewFollow(storage)

	h := handler.New(auth, thread, reply, like, follow, storage, cfg)

	return &Dependencies{
		Storage:        storage,
		Files:          files,
		Handler:        h,
		AuthMiddleware: mw.NewAuth(jwt),
		Upload:         backendmw.NewUpload(files, cfg.Public.MaxUploadSize, cfg.Public.AllowedImageMimeTypes),
		Jwt:            jwt,
		Config:         cfg,
	}
}
