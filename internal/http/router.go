package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/chadecozinha/api/internal/config"
	"github.com/chadecozinha/api/internal/event"
	"github.com/chadecozinha/api/internal/gift"
	httpmiddleware "github.com/chadecozinha/api/internal/http/middleware"
	"github.com/chadecozinha/api/internal/message"
	"github.com/chadecozinha/api/internal/rsvp"
	"github.com/chadecozinha/api/internal/service"
	"github.com/chadecozinha/api/internal/storage"
)

type Handler struct {
	cfg           *config.Config
	pool          *pgxpool.Pool
	redis         *redis.Client
	authService   *service.AuthService
	events        *event.Service
	gifts         *gift.Service
	rsvps         *rsvp.Service
	messages      *message.Service
	storage       storage.Uploader
	s3            *storage.S3Uploader
	publicLimiter *httpmiddleware.RateLimiter
	adminLimiter  *httpmiddleware.RateLimiter
}

// NewRouter devolve roteador configurado.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client, authService *service.AuthService) (http.Handler, error) {
	var uploader storage.Uploader = storage.NoopUploader{}
	var s3Uploader *storage.S3Uploader
	switch cfg.Storage.Provider {
	case "", "noop":
		// mantém uploader padrão
	case "s3", "r2", "minio":
		s3Cfg := storage.S3Config{
			Endpoint:     cfg.Storage.S3Endpoint,
			Region:       cfg.Storage.S3Region,
			Bucket:       cfg.Storage.S3Bucket,
			AccessKey:    cfg.Storage.S3AccessKey,
			SecretKey:    cfg.Storage.S3SecretKey,
			PublicDomain: cfg.Storage.S3PublicURL,
		}
		var err error
		s3Uploader, err = storage.NewS3Uploader(s3Cfg)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		uploader = s3Uploader
	default:
		return nil, fmt.Errorf("storage: provedor %s não suportado", cfg.Storage.Provider)
	}

	h := &Handler{
		cfg:           cfg,
		pool:          pool,
		redis:         redisClient,
		authService:   authService,
		events:        event.NewService(event.NewRepository(pool)),
		gifts:         gift.NewService(gift.NewRepository(pool)),
		rsvps:         rsvp.NewService(rsvp.NewRepository(pool)),
		messages:      message.NewService(message.NewRepository(pool)),
		storage:       uploader,
		s3:            s3Uploader,
		publicLimiter: httpmiddleware.NewRateLimiter(cfg.RateLimitPublic.RequestsPerSecond, cfg.RateLimitPublic.Burst),
		adminLimiter:  httpmiddleware.NewRateLimiter(cfg.RateLimitAdmin.RequestsPerSecond, cfg.RateLimitAdmin.Burst),
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.Recover)
	r.Use(httpmiddleware.CORS(cfg.AllowOrigins))

	r.Group(func(public chi.Router) {
		public.Use(httpmiddleware.IPRateLimit(h.publicLimiter))

		public.Get("/health", h.Health)
		public.Get("/ready", h.Ready)

		public.Get("/evento", h.GetEvent)

		public.Route("/presentes", func(g chi.Router) {
			g.Get("/", h.ListGifts)
			g.Get("/categorias", h.ListGiftCategories)
			g.Post("/{id}/reservar", h.ReserveGift)
		})

		public.Post("/confirmacoes", h.SubmitRSVP)

		public.Get("/recados", h.ListRecentMessages)
		public.Post("/recados", h.CreateMessage)

		public.Post("/auth/login", h.Login)
	})

	r.Group(func(private chi.Router) {
		private.Use(httpmiddleware.Auth(authService.JWT(), authService))
		private.Use(httpmiddleware.UserRateLimit(h.adminLimiter))

		private.Get("/me", h.Me)
		private.Post("/auth/logout", h.Logout)
	})

	adminRouter := chi.NewRouter()
	adminRouter.Use(httpmiddleware.Auth(authService.JWT(), authService))
	adminRouter.Use(httpmiddleware.UserRateLimit(h.adminLimiter))

	adminRouter.Get("/dashboard", h.Dashboard)

	adminRouter.Route("/confirmacoes", func(c chi.Router) {
		c.Get("/", h.AdminListRSVPs)
		c.Delete("/{id}", h.AdminDeleteRSVP)
		c.Get("/{id}/acompanhantes", h.AdminListCompanions)
		c.Put("/{id}/acompanhantes", h.AdminReplaceCompanions)
	})

	adminRouter.Route("/presentes", func(g chi.Router) {
		g.Get("/", h.AdminListGifts)
		g.Post("/", h.AdminCreateGift)
		g.Post("/reordenar", h.AdminReorderGifts)
		g.Patch("/{id}", h.AdminUpdateGift)
		g.Delete("/{id}", h.AdminDeleteGift)
		g.Post("/{id}/imagem", h.AdminUploadGiftImage)
		g.Post("/{id}/mover", h.AdminMoveGift)
		g.Post("/{id}/liberar", h.AdminUnreserveGift)
	})

	adminRouter.Route("/evento", func(e chi.Router) {
		e.Get("/", h.AdminGetEvent)
		e.Put("/", h.AdminUpdateEvent)
	})

	adminRouter.Route("/recados", func(m chi.Router) {
		m.Get("/", h.AdminListMessages)
		m.Delete("/{id}", h.AdminDeleteMessage)
	})

	r.Mount("/admin", adminRouter)

	return r, nil
}

// Health responde status simples.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready valida conexões com Postgres e Redis.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbErr := h.pool.Ping(ctx)
	redisErr := h.redis.Ping(ctx).Err()

	if dbErr != nil || redisErr != nil {
		WriteError(w, http.StatusServiceUnavailable, "INTERNAL", "dependências indisponíveis", map[string]any{
			"db":    errorString(dbErr),
			"redis": errorString(redisErr),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"ready": true})
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
