package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cardinal-capital/club-system/internal/api/handler"
	"github.com/cardinal-capital/club-system/internal/api/middleware"
	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/ports"
	"github.com/cardinal-capital/club-system/internal/core/service"
	mongodb "github.com/cardinal-capital/club-system/internal/infrastructure/db/mongo"
)

// RouterConfig carries everything NewRouter needs to assemble the API.
// The permission table is injected here so tests can substitute their own.
type RouterConfig struct {
	DB          *mongo.Database
	Redis       *redis.Client
	JWTSecret   string
	Permissions domain.PermissionTable
	Holdings    ports.HoldingsService
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("club"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(cfg.DB)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	memberService := service.NewMemberService(userRepo, cfg.Logger)

	files, err := mongodb.NewGridFSStore(cfg.DB)
	if err != nil {
		return nil, err
	}

	newsletters := service.NewContentService(
		mongodb.NewContentRepository[domain.Newsletter](cfg.DB, "newsletters"),
		service.ContentConfig[domain.Newsletter]{
			Collection: "newsletters",
			Date:       func(n domain.Newsletter) time.Time { return n.Date },
			Text:       func(n domain.Newsletter) []string { return []string{n.Title, n.Description} },
			OrderBy: map[string]func(a, b domain.Newsletter) bool{
				"title": func(a, b domain.Newsletter) bool { return a.Title < b.Title },
			},
		}, cfg.Logger)

	notes := service.NewContentService(
		mongodb.NewContentRepository[domain.MeetingNote](cfg.DB, "meeting_notes"),
		service.ContentConfig[domain.MeetingNote]{
			Collection: "meeting_notes",
			Date:       func(n domain.MeetingNote) time.Time { return n.Date },
			Text:       func(n domain.MeetingNote) []string { return []string{n.Title, n.Body} },
		}, cfg.Logger)

	pitches := service.NewContentService(
		mongodb.NewContentRepository[domain.Pitch](cfg.DB, "pitches"),
		service.ContentConfig[domain.Pitch]{
			Collection: "pitches",
			Date:       func(p domain.Pitch) time.Time { return p.Date },
			Text:       func(p domain.Pitch) []string { return []string{p.Title, p.Presenter, p.Symbol} },
			Symbol:     func(p domain.Pitch) string { return p.Symbol },
		}, cfg.Logger)

	gallery := service.NewContentService(
		mongodb.NewContentRepository[domain.GalleryImage](cfg.DB, "gallery_images"),
		service.ContentConfig[domain.GalleryImage]{
			Collection: "gallery_images",
			Date:       func(g domain.GalleryImage) time.Time { return g.Date },
			Text:       func(g domain.GalleryImage) []string { return []string{g.Title, g.Caption} },
		}, cfg.Logger)

	events := service.NewContentService(
		mongodb.NewContentRepository[domain.Event](cfg.DB, "events"),
		service.ContentConfig[domain.Event]{
			Collection: "events",
			Date:       func(ev domain.Event) time.Time { return ev.Date },
			Text:       func(ev domain.Event) []string { return []string{ev.Title, ev.Description, ev.Location} },
		}, cfg.Logger)

	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(memberService)
	newsletterHandler := handler.NewNewsletterHandler(newsletters)
	noteHandler := handler.NewNoteHandler(notes)
	pitchHandler := handler.NewPitchHandler(pitches)
	galleryHandler := handler.NewGalleryHandler(gallery, files)
	eventHandler := handler.NewEventHandler(events)
	holdingsHandler := handler.NewHoldingsHandler(cfg.Holdings)

	auth := middleware.Auth(middleware.NewJWTResolver(cfg.JWTSecret))
	permit := func(p domain.Permission) echo.MiddlewareFunc {
		return middleware.Permit(cfg.Permissions, p)
	}

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Public content reads ---
	e.GET("/v1/newsletters", newsletterHandler.List)
	e.GET("/v1/newsletters/:id", newsletterHandler.Get)
	e.GET("/v1/notes", noteHandler.List)
	e.GET("/v1/notes/:id", noteHandler.Get)
	e.GET("/v1/pitches", pitchHandler.List)
	e.GET("/v1/pitches/:id", pitchHandler.Get)
	e.GET("/v1/gallery", galleryHandler.List)
	e.GET("/v1/gallery/:id", galleryHandler.Get)
	e.GET("/v1/gallery/:id/file", galleryHandler.File)
	e.GET("/v1/events", eventHandler.List)
	e.GET("/v1/events/:id", eventHandler.Get)

	// --- Content mutations: newsletters and notes are the secretary's ---
	e.POST("/v1/newsletters", newsletterHandler.Create, auth, permit(domain.PermSecretary))
	e.PUT("/v1/newsletters/:id", newsletterHandler.Update, auth, permit(domain.PermSecretary))
	e.DELETE("/v1/newsletters/:id", newsletterHandler.Delete, auth, permit(domain.PermSecretary))
	e.POST("/v1/notes", noteHandler.Create, auth, permit(domain.PermSecretary))
	e.PUT("/v1/notes/:id", noteHandler.Update, auth, permit(domain.PermSecretary))
	e.DELETE("/v1/notes/:id", noteHandler.Delete, auth, permit(domain.PermSecretary))

	// --- Content mutations: pitches, gallery, events require ADMIN ---
	e.POST("/v1/pitches", pitchHandler.Create, auth, permit(domain.PermAdmin))
	e.PUT("/v1/pitches/:id", pitchHandler.Update, auth, permit(domain.PermAdmin))
	e.DELETE("/v1/pitches/:id", pitchHandler.Delete, auth, permit(domain.PermAdmin))
	e.POST("/v1/gallery", galleryHandler.Upload, auth, permit(domain.PermAdmin))
	e.DELETE("/v1/gallery/:id", galleryHandler.Delete, auth, permit(domain.PermAdmin))
	e.POST("/v1/events", eventHandler.Create, auth, permit(domain.PermAdmin))
	e.PUT("/v1/events/:id", eventHandler.Update, auth, permit(domain.PermAdmin))
	e.DELETE("/v1/events/:id", eventHandler.Delete, auth, permit(domain.PermAdmin))

	// --- Portfolio tracker ---
	e.GET("/v1/holdings", holdingsHandler.List, auth, permit(domain.PermHoldingsRead))
	e.GET("/v1/holdings/:id", holdingsHandler.Get, auth, permit(domain.PermHoldingsRead))
	e.POST("/v1/holdings", holdingsHandler.Create, auth, permit(domain.PermHoldingsWrite))
	e.PUT("/v1/holdings/:id", holdingsHandler.Update, auth, permit(domain.PermHoldingsWrite))
	e.DELETE("/v1/holdings/:id", holdingsHandler.Delete, auth, permit(domain.PermHoldingsWrite))
	e.POST("/v1/holdings/refresh", holdingsHandler.Refresh, auth, permit(domain.PermHoldingsWrite))
	e.GET("/v1/holdings/symbol-search", holdingsHandler.SymbolSearch, auth, permit(domain.PermHoldingsWrite))

	// --- Member administration ---
	e.GET("/v1/members", memberHandler.List, auth, permit(domain.PermAdmin))
	e.PUT("/v1/members/:id/role", memberHandler.UpdateRole, auth, permit(domain.PermAdmin))
	e.POST("/v1/members/transfer-role", memberHandler.TransferRole, auth, permit(domain.PermLeadership))
	e.PUT("/v1/members/:id/deactivate", memberHandler.Deactivate, auth, permit(domain.PermSuperAdmin))

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.DB, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
