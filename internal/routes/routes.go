package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/durvibangera/sorte/internal/config"
	"github.com/durvibangera/sorte/internal/database"
	"github.com/durvibangera/sorte/internal/features/auth"
	"github.com/durvibangera/sorte/internal/features/courses"
	"github.com/durvibangera/sorte/internal/features/schedule"
	"github.com/durvibangera/sorte/internal/features/tasks"
	"github.com/durvibangera/sorte/internal/middleware"
	"github.com/durvibangera/sorte/internal/pkg/cloudinary"
	"github.com/durvibangera/sorte/internal/pkg/jwt"
	"github.com/durvibangera/sorte/internal/pkg/ratelimit"
)

// courseLookupAdapter adapts courses.Repository to tasks.CourseLookup
type courseLookupAdapter struct {
	repo *courses.Repository
}

func (a *courseLookupAdapter) FindOwned(ctx context.Context, userID, courseID string) (*tasks.CourseRef, error) {
	course, err := a.repo.FindByID(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	return &tasks.CourseRef{ID: course.ID, Name: course.Name, Color: course.Color}, nil
}

func (a *courseLookupAdapter) FindRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]tasks.CourseRef, error) {
	list, err := a.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	refs := make(map[primitive.ObjectID]tasks.CourseRef, len(list))
	for _, c := range list {
		refs[c.ID] = tasks.CourseRef{ID: c.ID, Name: c.Name, Color: c.Color}
	}
	return refs, nil
}

// SetupRoutes registers every feature under /api and returns the
// repositories whose indexes must exist before serving. Background sweeps
// started here stop when ctx is done.
func SetupRoutes(ctx context.Context, router *gin.Engine, db *mongo.Database, cfg *config.Config, log *zap.Logger) []database.Indexer {
	api := router.Group("/api")

	jwtCfg := jwt.DefaultConfig(cfg.JWTSecret)
	jwtCfg.AccessExpiry = cfg.JWTExpire
	authMiddleware := middleware.Auth(jwtCfg)
	limiter := ratelimit.New(cfg.AuthRateLimit, cfg.AuthRateWindow)
	limiter.StartCleanup(ctx, cfg.AuthRateWindow)
	authLimiter := ratelimit.Middleware(limiter)

	usersRepo := auth.NewRepository(db)
	coursesRepo := courses.NewRepository(db)
	tasksRepo := tasks.NewRepository(db)
	scheduleRepo := schedule.NewRepository(db)

	// Avatar uploads and Google sign-in are optional; without credentials
	// those endpoints answer 503.
	var images auth.ImageStore
	if cld, err := cloudinary.NewService(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		cfg.CloudinaryUploadFolder,
	); err != nil {
		log.Warn("cloudinary disabled", zap.Error(err))
	} else {
		images = cld
	}

	var google auth.GoogleVerifier
	if cfg.GoogleClientID != "" {
		verifier, err := auth.NewGoogleVerifier(ctx, cfg.GoogleClientID)
		if err != nil {
			log.Warn("google sign-in disabled", zap.Error(err))
		} else {
			google = verifier
		}
	}

	authService := auth.NewService(usersRepo, jwtCfg, google, images, log)
	coursesService := courses.NewService(coursesRepo, tasksRepo, log)
	tasksService := tasks.NewService(tasksRepo, &courseLookupAdapter{repo: coursesRepo}, log)
	scheduleService := schedule.NewService(scheduleRepo, log)

	auth.RegisterRoutes(api, auth.NewHandler(authService), authMiddleware, authLimiter)
	courses.RegisterRoutes(api, courses.NewHandler(coursesService), authMiddleware)
	tasks.RegisterRoutes(api, tasks.NewHandler(tasksService), authMiddleware)
	schedule.RegisterRoutes(api, schedule.NewHandler(scheduleService), authMiddleware)

	return []database.Indexer{usersRepo, coursesRepo, tasksRepo, scheduleRepo}
}
