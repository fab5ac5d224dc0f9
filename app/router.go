// Package app wires the HTTP API together
package app

import (
	"bitwise74/chores-api/app/achievement"
	"bitwise74/chores-api/app/oauth"
	"bitwise74/chores-api/app/root"
	"bitwise74/chores-api/app/user"
	"bitwise74/chores-api/aws"
	"bitwise74/chores-api/db"
	"bitwise74/chores-api/internal"
	"bitwise74/chores-api/internal/service"
	"bitwise74/chores-api/internal/store"
	"bitwise74/chores-api/pkg/middleware"
	"bitwise74/chores-api/pkg/security"
	"context"
	"fmt"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

// NewRouter connects to the database, builds every service and returns the
// engine ready to serve
func NewRouter(ctx context.Context) (*gin.Engine, error) {
	makeLogger()

	gdb, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	d, err := NewDeps(ctx, gdb)
	if err != nil {
		return nil, err
	}

	// Expired tokens are rejected on use anyway, the sweep only keeps the
	// tables small
	service.Cleanup(ctx, viper.GetDuration("cleanup.interval"), d.Store)

	return newEngine(ctx, d), nil
}

// NewDeps builds the services on top of an open database from the current config
func NewDeps(ctx context.Context, gdb *gorm.DB) (*internal.Deps, error) {
	s := store.New(gdb)

	d := &internal.Deps{
		DB:    gdb,
		Store: s,
		Users: service.NewUserService(s, security.New()),
		Sessions: service.NewSessionService(s,
			security.NewJWTSigner(viper.GetString("jwt.secret")),
			viper.GetDuration("session.ttl"),
		),
	}

	var mailer service.Mailer = &service.LogMailer{BaseURL: publicURL()}
	if viper.GetBool("mail.enabled") {
		mailer = &service.SMTPMailer{
			Host:     viper.GetString("mail.host"),
			Port:     viper.GetInt("mail.port"),
			From:     viper.GetString("mail.sender_address"),
			Password: viper.GetString("mail.password"),
			BaseURL:  publicURL(),
		}
	}

	d.Verification = service.NewVerificationService(s, mailer,
		viper.GetDuration("verification.ttl"),
		viper.GetDuration("verification.resend_cooldown"),
	)

	if viper.GetString("storage.type") == "s3" {
		s3, err := aws.NewS3(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
		}

		d.Avatars = service.NewAvatarUploader(s3.C, *s3.Bucket, s3.PublicURL, s)
	}

	return d, nil
}

func newEngine(ctx context.Context, d *internal.Deps) *gin.Engine {
	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "TurnstileToken"},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		ginzap.RecoveryWithZap(zap.L(), true),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 4 << 20

	rateLimit := viper.GetInt("security.rate_limit")

	jwt := middleware.NewJWTMiddleware(d.Sessions)
	turnstile := middleware.NewTurnstileMiddleware()
	validation := middleware.NewUserValidationMiddleware()
	rateLimiter := middleware.RateLimiterMiddleware(ctx, middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
	})

	m := router.Group("/api", rateLimiter)
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)

		// GET /api/validate		-> Validates the session cookie
		m.GET("/validate", jwt, root.Validate)

		// GET /api/achievements	-> Lists every achievement that can be earned
		m.GET("/achievements", cacheFor(5*60), func(c *gin.Context) { achievement.AchievementList(c, d) })
	}

	u := m.Group("/users", middleware.BodySizeLimiter(1<<20))
	{
		// GET /api/users/me		-> Returns the signed in user
		u.GET("/me", jwt, func(c *gin.Context) { user.UserFetch(c, d) })

		// POST /api/users 		-> Registers a new user
		u.POST("", turnstile, validation, func(c *gin.Context) { user.UserRegister(c, d) })

		// POST /api/users/login 	-> Logs in a user and sets the session cookie
		u.POST("/login", func(c *gin.Context) { user.UserLogin(c, d) })

		// POST /api/users/logout	-> Ends the current session
		u.POST("/logout", jwt, func(c *gin.Context) { user.UserLogout(c, d) })

		// POST /api/users/verify	-> Verifies an email with a token
		u.POST("/verify", func(c *gin.Context) { user.UserVerify(c, d) })

		// POST /api/users/verify/resend -> Sends a new verification mail
		u.POST("/verify/resend", turnstile, func(c *gin.Context) { user.UserVerifyResend(c, d) })
	}

	// PUT /api/users/avatar	-> Uploads a new avatar image
	m.PUT("/users/avatar", jwt, middleware.BodySizeLimiter(3<<20), func(c *gin.Context) { user.UserAvatar(c, d) })

	if viper.GetString("oauth.callback_secret") != "" {
		// POST /api/auth/oauth/callback -> Signs in a user handed over by the OAuth broker
		m.POST("/auth/oauth/callback", oauth.NewSecretMiddleware(), func(c *gin.Context) { oauth.Callback(c, d) })
	}

	return router
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func publicURL() string {
	scheme := "http"
	if viper.GetBool("host.ssl.enabled") {
		scheme = "https"
	}

	return scheme + "://" + viper.GetString("host.domain")
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
