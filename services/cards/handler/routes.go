package handler

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/tapcard/tapcard/internal/pkg/database"
	"github.com/tapcard/tapcard/internal/pkg/middleware"
	"github.com/tapcard/tapcard/internal/pkg/models"
	"github.com/tapcard/tapcard/services/cards/handler/http"
)

// Handler coordinates the HTTP handlers for the cards service
type Handler struct {
	cardHandler *http.CardHandler
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	cardHandler *http.CardHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		cardHandler: cardHandler,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from the Authorization header to
			// avoid type conflicts with the middleware's token storage
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if profileID, exists := claims["profile_id"]; exists {
							c.Set("profile_id", profileID)
						}
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public activation routes, rate limited per client
	otpLimiter := middleware.IPRateLimiter(10, time.Minute, h.redisClient.GetClient())

	cardGroup := e.Group("/api/cards")
	cardGroup.POST("/request-otp", h.cardHandler.RequestOTP, otpLimiter)
	cardGroup.POST("/verify", h.cardHandler.VerifyOTP, otpLimiter)

	// Card creation requires an authenticated profile session
	cardGroup.POST("/create", h.cardHandler.CreateCard, h.GetJWTMiddleware())

	// Internal administrative routes, guarded by a service API key
	internalGroup := e.Group("/internal/cards", middleware.ValidateAPIKey(h.cfg.APIKey.AdminAPIKey))
	internalGroup.POST("/:id/revoke", h.cardHandler.RevokeCard)
}
