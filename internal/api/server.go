package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/playtrack/playtrack-data/internal/api/handler"
	"github.com/playtrack/playtrack-data/internal/cache"
	"github.com/playtrack/playtrack-data/internal/config"
	"github.com/playtrack/playtrack-data/internal/provider/opendota"
	"github.com/playtrack/playtrack-data/internal/provider/overfast"
	"github.com/playtrack/playtrack-data/internal/provider/riot"
	"github.com/playtrack/playtrack-data/internal/provider/ubisoft"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(riotClient *riot.Client, dotaClient *opendota.Client, owClient *overfast.Client, r6Client *ubisoft.Client, appCache *cache.Cache, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "Link", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(riotClient, dotaClient, owClient, r6Client, appCache, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
		r.Get("/providers", h.HealthCheckProviders)
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// League of Legends
		r.Route("/lol", func(r chi.Router) {
			r.Get("/summoner/{region}/{name}", h.GetLoLSummoner)
			r.Get("/ranked/{region}/{name}", h.GetLoLRanked)
			r.Get("/mastery/{region}/{name}", h.GetLoLMastery)
			r.Get("/matches/{region}/{name}", h.GetLoLMatches)
			r.Get("/profile/{region}/{name}", h.GetLoLProfile)
			r.Get("/stats/{region}/{name}", h.GetLoLStats)
		})

		// Valorant
		r.Route("/valorant", func(r chi.Router) {
			r.Get("/content/{routing}", h.GetValContent)
			r.Get("/matches/{routing}/{matchID}", h.GetValMatch)
			r.Get("/matchlist/{routing}/{puuid}", h.GetValMatchlist)
			r.Get("/recent-matches/{routing}/{queue}", h.GetValRecentMatches)
			r.Get("/leaderboards/{routing}/{actID}", h.GetValLeaderboard)
			r.Get("/status/{routing}", h.GetValStatus)
			r.Get("/account/{routing}/{gameName}/{tagLine}", h.GetValAccount)
			r.Get("/profile/{routing}/by-riot-id/{gameName}/{tagLine}", h.GetValProfileByRiotID)
			r.Get("/profile/{routing}/{puuid}", h.GetValProfile)
		})

		// Dota 2
		r.Route("/dota", func(r chi.Router) {
			r.Get("/players/{accountID}", h.GetDotaPlayer)
			r.Get("/players/{accountID}/recent-matches", h.GetDotaRecentMatches)
			r.Get("/players/{accountID}/heroes", h.GetDotaPlayerHeroes)
			r.Get("/players/{accountID}/wl", h.GetDotaWinLoss)
			r.Get("/players/{accountID}/rankings", h.GetDotaRankings)
			r.Get("/heroes", h.GetDotaHeroes)
			r.Get("/hero-stats", h.GetDotaHeroStats)
			r.Get("/matches/{matchID}", h.GetDotaMatch)
			r.Get("/public-matches", h.GetDotaPublicMatches)
			r.Get("/pro-players", h.GetDotaProPlayers)
			r.Get("/pro-matches", h.GetDotaProMatches)
			r.Get("/metadata", h.GetDotaMetadata)
		})

		// Overwatch 2
		r.Route("/overwatch", func(r chi.Router) {
			r.Get("/players/{battletag}", h.GetOWPlayer)
			r.Get("/players/{battletag}/summary", h.GetOWPlayerSummary)
			r.Get("/players/{battletag}/competitive", h.GetOWPlayerCompetitive)
			r.Get("/players/{battletag}/heroes", h.GetOWPlayerHeroes)
			r.Get("/heroes", h.GetOWHeroes)
			r.Get("/heroes/{heroKey}", h.GetOWHeroDetails)
			r.Get("/maps", h.GetOWMaps)
			r.Get("/profile/{battletag}", h.GetOWProfile)
		})

		// Rainbow Six Siege
		r.Route("/r6", func(r chi.Router) {
			r.Get("/players", h.SearchR6Player)
			r.Get("/players/{profileID}/stats", h.GetR6PlayerStats)
			r.Get("/players/{profileID}/seasonal", h.GetR6SeasonalStats)
			r.Get("/players/{profileID}/operators", h.GetR6OperatorStats)
			r.Get("/players/{profileID}/fps-stats", h.GetR6Stats)
		})

		// Stats normalization
		r.Route("/stats", func(r chi.Router) {
			r.Get("/transformations", h.GetSupportedTransformations)
			r.Post("/transform", h.TransformStats)
		})
	})

	return r
}
