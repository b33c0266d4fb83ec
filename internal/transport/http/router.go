package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/nownpp/wonder-science-hub/internal/application/asset"
	"github.com/nownpp/wonder-science-hub/internal/application/catalog"
	"github.com/nownpp/wonder-science-hub/internal/application/notification"
	"github.com/nownpp/wonder-science-hub/internal/application/progress"
	"github.com/nownpp/wonder-science-hub/internal/application/verification"
	"github.com/nownpp/wonder-science-hub/internal/config"
	"github.com/nownpp/wonder-science-hub/internal/infrastructure/dynamo"
	jwtinfra "github.com/nownpp/wonder-science-hub/internal/infrastructure/jwt"
	"github.com/nownpp/wonder-science-hub/internal/infrastructure/mail"
	s3infra "github.com/nownpp/wonder-science-hub/internal/infrastructure/s3"
	"github.com/nownpp/wonder-science-hub/internal/infrastructure/sns"
	"github.com/nownpp/wonder-science-hub/internal/transport/http/handler"
	appmiddleware "github.com/nownpp/wonder-science-hub/internal/transport/http/middleware"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	VerificationRepo *dynamo.VerificationRepo
	VideoRepo        *dynamo.VideoRepo
	SimulationRepo   *dynamo.SimulationRepo
	StudyFileRepo    *dynamo.StudyFileRepo
	NotificationRepo *dynamo.NotificationRepo
	VoteRepo         *dynamo.VoteRepo
	ProgressRepo     *dynamo.ProgressRepo
	S3Store          *s3infra.Store
	Mailer           mail.Mailer
	Announcer        sns.Announcer
	JWTVerifier      *jwtinfra.Verifier
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTVerifier != nil {
		authMw = appmiddleware.Auth(deps.JWTVerifier)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to the public code endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	verificationSvc := verification.NewService(verification.ServiceDeps{
		Codes:          deps.VerificationRepo,
		Mailer:         deps.Mailer,
		CodeTTL:        cfg.OTPTTL,
		ResendInterval: cfg.OTPResendInterval,
	})
	catalogSvc := catalog.NewService(deps.VideoRepo, deps.SimulationRepo, deps.StudyFileRepo)
	notifSvc := notification.NewService(deps.NotificationRepo, deps.VoteRepo, deps.Announcer)
	progressSvc := progress.NewService(deps.ProgressRepo)
	assetSvc := asset.NewService(deps.S3Store)

	healthH := handler.NewHealthHandler()
	verificationH := handler.NewVerificationHandler(verificationSvc)
	videoH := handler.NewVideoHandler(catalogSvc)
	simH := handler.NewSimulationHandler(catalogSvc)
	fileH := handler.NewStudyFileHandler(catalogSvc)
	notifH := handler.NewNotificationHandler(notifSvc)
	progressH := handler.NewProgressHandler(progressSvc)
	assetH := handler.NewAssetHandler(assetSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/functions/send-verification-code", verificationH.SendCode)
		r.With(sensitiveRL.Limit).Post("/functions/verify-code", verificationH.VerifyCode)

		// Catalog browsing and counter bumps are open; the apps hit them
		// before the student has a session.
		r.Get("/videos", videoH.List)
		r.Get("/videos/{id}", videoH.Get)
		r.Post("/videos/{id}/view", videoH.RecordView)
		r.Get("/simulations", simH.List)
		r.Get("/simulations/{id}", simH.Get)
		r.Post("/simulations/{id}/play", simH.RecordPlay)
		r.Get("/files", fileH.List)
		r.Get("/files/{id}", fileH.Get)
		r.Post("/files/{id}/download", fileH.RecordDownload)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/notifications", notifH.List)
			r.Post("/notifications/{id}/votes", notifH.CastVote)
			r.Get("/notifications/{id}/votes", notifH.ListVotes)

			r.Get("/progress", progressH.List)
			r.Post("/progress", progressH.Upsert)

			// Teacher-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(appmiddleware.RoleTeacher))

				r.Post("/videos", videoH.Create)
				r.Put("/videos/{id}", videoH.Update)
				r.Delete("/videos/{id}", videoH.Delete)

				r.Post("/simulations", simH.Create)
				r.Put("/simulations/{id}", simH.Update)
				r.Delete("/simulations/{id}", simH.Delete)

				r.Post("/files", fileH.Create)
				r.Put("/files/{id}", fileH.Update)
				r.Delete("/files/{id}", fileH.Delete)

				r.Post("/notifications", notifH.Create)
				r.Delete("/notifications/{id}", notifH.Delete)

				r.Post("/assets/{folder}", assetH.Upload)
				r.Get("/assets", assetH.Link)
				r.Delete("/assets", assetH.Delete)
			})
		})
	})

	return r
}
