package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/fitness-booking/internal/audit"
	"github.com/BruksfildServices01/fitness-booking/internal/auth"
	"github.com/BruksfildServices01/fitness-booking/internal/config"
	"github.com/BruksfildServices01/fitness-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/fitness-booking/internal/infra/repository"
	"github.com/BruksfildServices01/fitness-booking/internal/middleware"
	"github.com/BruksfildServices01/fitness-booking/internal/permission"
	"github.com/BruksfildServices01/fitness-booking/internal/timezone"
	"github.com/BruksfildServices01/fitness-booking/internal/upload"
	ucAccount "github.com/BruksfildServices01/fitness-booking/internal/usecase/account"
	ucBooking "github.com/BruksfildServices01/fitness-booking/internal/usecase/booking"
	ucClass "github.com/BruksfildServices01/fitness-booking/internal/usecase/fitnessclass"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	store upload.Store,
	auditDispatcher *audit.Dispatcher,
) {

	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// INFRA
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(db)
	classRepo := infraRepo.NewFitnessClassGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)
	loc := timezone.Location(cfg.Timezone)
	maxBytes := cfg.Storage.MaxBytes

	// ======================================================
	// HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(
		ucAccount.NewRegister(accountRepo, hasher, auditDispatcher),
		ucAccount.NewLogin(accountRepo, hasher, tokens),
		ucAccount.NewUpdateProfile(accountRepo, auditDispatcher),
		ucAccount.NewRequestTrainer(accountRepo, auditDispatcher),
		ucAccount.NewReviewTrainer(accountRepo, auditDispatcher),
		ucAccount.NewListTrainerRequests(accountRepo),
	)

	classHandler := handlers.NewFitnessClassHandler(
		ucClass.NewCreateClass(classRepo, accountRepo, store, maxBytes, loc, auditDispatcher),
		ucClass.NewUpdateClass(classRepo, store, maxBytes, loc, auditDispatcher),
		ucClass.NewListClasses(classRepo),
		ucClass.NewListOwnClasses(classRepo, accountRepo),
		ucClass.NewDeleteClass(classRepo, auditDispatcher),
	)

	bookingHandler := handlers.NewBookingHandler(
		ucBooking.NewCreateBooking(bookingRepo, accountRepo, classRepo, loc, auditDispatcher),
		ucBooking.NewListMyBookings(bookingRepo),
		ucBooking.NewCancelBooking(bookingRepo, auditDispatcher),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db, loc)

	requireAuth := middleware.AuthMiddleware(tokens)
	adminOnly := middleware.RequireRole(permission.AdminOnly)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api/v1")

	user := api.Group("/user")
	{
		user.POST("/register", userHandler.Register)
		user.POST("/login", userHandler.Login)

		user.PATCH("/profile/:id", requireAuth, middleware.SelfOrAdmin("id"), userHandler.UpdateProfile)
		user.POST("/become-trainer", requireAuth, userHandler.BecomeTrainer)

		user.GET("/request", requireAuth, adminOnly, userHandler.ListTrainerRequests)
		user.PATCH("/admin/approve-trainer/:id", requireAuth, adminOnly, userHandler.ApproveTrainer)
		user.PATCH("/admin/reject-trainer/:id", requireAuth, adminOnly, userHandler.RejectTrainer)
	}

	classes := api.Group("/fitness_class")
	{
		trainerOrAdmin := middleware.RequireRole(permission.TrainerOrAdmin)

		classes.GET("", classHandler.List)
		classes.GET("/mine", requireAuth, trainerOrAdmin, classHandler.ListMine)
		classes.POST("", requireAuth, trainerOrAdmin, classHandler.Create)
		classes.PATCH("/:id", requireAuth, middleware.ClassOwnerOrAdmin(classRepo), classHandler.Update)
		classes.DELETE("/:id", requireAuth, adminOnly, classHandler.Delete)
	}

	bookings := api.Group("/booking")
	bookings.Use(requireAuth)
	{
		bookings.POST("/:classId", middleware.RequireRole(permission.UserOrAdmin), bookingHandler.Create)
		bookings.GET("/my-bookings", bookingHandler.MyBookings)
		bookings.PATCH("/:id", middleware.BookingOwnerOrAdmin(bookingRepo), bookingHandler.Cancel)
	}

	api.GET("/audit-logs", requireAuth, adminOnly, auditLogsHandler.List)
}
