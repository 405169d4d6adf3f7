package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"travelagent/internal/config"
	"travelagent/internal/database"
	"travelagent/internal/gateway"
	"travelagent/internal/modules/guestbooking"
	"travelagent/internal/modules/tripbooking"
	jwtsvc "travelagent/internal/pkg/jwt"
	"travelagent/internal/pkg/logger"
	"travelagent/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logg := logger.New(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	store := repository.NewStore(db)
	tripRepo := repository.NewTripBookingRepository(db)

	flight := gateway.NewFlight(cfg.FlightAPIURL, cfg.RemoteTimeout, logg)
	taxi := gateway.NewTaxi(cfg.TaxiAPIURL, cfg.RemoteTimeout, logg)

	j := jwtsvc.New(cfg.AdminJWTSecret, 24*time.Hour)

	guestService := guestbooking.NewService(store, logg)
	guestHandler := guestbooking.NewHandler(guestService)

	tripService := tripbooking.NewService(store, tripRepo, flight, taxi, logg)
	tripHandler := tripbooking.NewHandler(tripService)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		guestHandler.RegisterRoutes(v1)
		tripHandler.RegisterRoutes(v1)

		// teardown crosses three systems, admins only
		admin := v1.Group("/")
		admin.Use(adminMiddleware(j))
		{
			tripHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func adminMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing bearer token",
				},
			})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil || claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Next()
	}
}
