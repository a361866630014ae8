package routes

import (
	"net/http"
	"time"

	"mindcare/config"
	"mindcare/handlers"
	"mindcare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		protected.POST("/logout", hb.Auth.Logout)
		protected.GET("/me", hb.Auth.Me)
	}
}

// RegisterCounselorRoutes registers the counselor directory endpoints.
// Reads are public; mutations are admin only.
func RegisterCounselorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/counselors")
	{
		api.GET("", hb.Counselor.List)
		api.GET("/specialties", hb.Counselor.Specialties)
		api.GET("/:id", hb.Counselor.GetByID)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache), middleware.RequireAdmin())
		admin.POST("", hb.Counselor.Create)
		admin.PUT("/:id", hb.Counselor.Update)
		admin.DELETE("/:id", hb.Counselor.Delete)
	}
}

// RegisterAppointmentRoutes registers the booking endpoints. All of them
// require authentication.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
	{
		api.POST("", hb.Appointment.Create)
		api.GET("/user", hb.Appointment.ListUser)
		api.GET("/all", middleware.RequireAdmin(), hb.Appointment.ListAll)
		api.GET("/counselor/:counselorId", hb.Appointment.ListCounselor)
		api.GET("/slots", hb.Appointment.Slots)
		api.GET("/:id", hb.Appointment.GetByID)
		api.PUT("/:id/status", hb.Appointment.UpdateStatus)
		api.DELETE("/:id", hb.Appointment.Cancel)
	}
}

// RegisterPaymentRoutes registers the simulated payment endpoint.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
	{
		api.POST("/:appointmentId/confirm", hb.Payment.Confirm)
	}
}

// RegisterPostRoutes registers the peer-support feed endpoints.
func RegisterPostRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/posts")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
	{
		api.GET("", hb.Post.Feed)
		api.POST("", hb.Post.Create)
		api.POST("/:id/like", hb.Post.ToggleLike)
		api.POST("/:id/reply", hb.Post.Reply)
		api.POST("/:id/reply/:replyId/like", hb.Post.ToggleReplyLike)
		api.DELETE("/:id", hb.Post.Delete)
	}
}

// RegisterWebinarRoutes registers the webinar schedule endpoints.
func RegisterWebinarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/webinars")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
	{
		api.GET("", hb.Webinar.List)
		api.POST("/:id/join", hb.Webinar.Join)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.POST("", hb.Webinar.Create)
		admin.DELETE("/:id", hb.Webinar.Delete)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "MindCare API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and global
// middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := []string{"*"}
	allowCredentials := false
	if origin := config.AppConfig.FrontendOrigin; origin != "" {
		origins = []string{origin}
		allowCredentials = true
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCounselorRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterPostRoutes(r, hb)
	RegisterWebinarRoutes(r, hb)
}
