// Package mockapi is an in-memory implementation of the board service's
// HTTP surface, used by `boardwalk serve` for local development and by the
// client tests as a real server behind httptest.
package mockapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const demoUserID = "user-1"

// Config holds the knobs for a mock server instance.
type Config struct {
	// Demo credentials accepted by /auth/login.
	Email    string
	Password string

	JWTSecret string
	TokenTTL  time.Duration

	// RatePerMinute limits requests per client IP; 0 disables limiting.
	RatePerMinute int

	// SeedPosts is how many sample posts to preload.
	SeedPosts int
}

// DefaultConfig returns a ready-to-run local setup.
func DefaultConfig() Config {
	return Config{
		Email:         "admin@example.com",
		Password:      "boardwalk",
		JWTSecret:     "boardwalk-dev-secret",
		TokenTTL:      24 * time.Hour,
		RatePerMinute: 600,
		SeedPosts:     120,
	}
}

// Server bundles the store, fixtures and route handlers.
type Server struct {
	cfg          Config
	store        *Store
	passwordHash []byte
	sanitizer    *bluemonday.Policy
	log          *zap.Logger
}

// NewServer creates a server from cfg. The demo password is hashed at
// construction so it never sits in memory in the clear.
func NewServer(cfg Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 24 * time.Hour
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:          cfg,
		store:        NewStore(),
		passwordHash: hash,
		sanitizer:    bluemonday.UGCPolicy(),
		log:          log,
	}
	if cfg.SeedPosts > 0 {
		s.store.Seed(cfg.SeedPosts)
	}
	return s, nil
}

// Store exposes the underlying post store, mainly for test setup.
func (s *Server) Store() *Store { return s.store }

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	if s.cfg.RatePerMinute > 0 {
		r.Use(rateLimit(s.cfg.RatePerMinute))
	}

	r.POST("/auth/login", s.handleLogin)

	posts := r.Group("/posts", authRequired(s.cfg.JWTSecret))
	{
		posts.GET("", s.handleListPosts)
		posts.POST("", s.handleCreatePost)
		posts.GET("/:id", s.handleGetPost)
		posts.PATCH("/:id", s.handleUpdatePost)
		posts.DELETE("/:id", s.handleDeletePost)
	}

	registerAnalytics(r)

	return r
}
