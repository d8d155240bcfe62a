package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/fitness-booking/internal/domain/account"
	"github.com/BruksfildServices01/fitness-booking/internal/dto"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/httpresp"
	"github.com/BruksfildServices01/fitness-booking/internal/middleware"
	ucAccount "github.com/BruksfildServices01/fitness-booking/internal/usecase/account"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	register       *ucAccount.Register
	login          *ucAccount.Login
	updateProfile  *ucAccount.UpdateProfile
	requestTrainer *ucAccount.RequestTrainer
	reviewTrainer  *ucAccount.ReviewTrainer
	listRequests   *ucAccount.ListTrainerRequests
}

func NewUserHandler(
	register *ucAccount.Register,
	login *ucAccount.Login,
	updateProfile *ucAccount.UpdateProfile,
	requestTrainer *ucAccount.RequestTrainer,
	reviewTrainer *ucAccount.ReviewTrainer,
	listRequests *ucAccount.ListTrainerRequests,
) *UserHandler {
	return &UserHandler{
		register:       register,
		login:          login,
		updateProfile:  updateProfile,
		requestTrainer: requestTrainer,
		reviewTrainer:  reviewTrainer,
		listRequests:   listRequests,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		invalidBody(c)
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message": "User created successfully",
		"user":    dto.NewUserDTO(user),
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		invalidBody(c)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Login successfully",
		"user": dto.SessionUserDTO{
			ID:       res.User.ID,
			Username: res.User.Username,
			Role:     res.User.Role,
		},
		"accessToken": res.AccessToken,
	})
}

// ======================================================
// AUTHENTICATED
// ======================================================

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := paramUUID(c, "id", httperr.ErrValidation("invalid_user_id", "Invalid userId"))
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		invalidBody(c)
		return
	}

	claims := middleware.MustClaims(c)
	user, err := h.updateProfile.Execute(c.Request.Context(), claims.UserID, userID, domain.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Profile updated",
		"user":    dto.NewUserDTO(user),
	})
}

func (h *UserHandler) BecomeTrainer(c *gin.Context) {
	claims := middleware.MustClaims(c)

	user, err := h.requestTrainer.Execute(c.Request.Context(), claims.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Trainer request submitted",
		"status":  user.TrainerRequest,
	})
}

// ======================================================
// ADMIN
// ======================================================

func (h *UserHandler) ListTrainerRequests(c *gin.Context) {
	users, err := h.listRequests.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Get all user pending request successfully",
		"user":    dto.NewTrainerRequestDTOs(users),
	})
}

func (h *UserHandler) ApproveTrainer(c *gin.Context) {
	userID, ok := paramUUID(c, "id", httperr.ErrValidation("invalid_user_id", "Invalid userId"))
	if !ok {
		return
	}

	if _, err := h.reviewTrainer.Approve(c.Request.Context(), middleware.MustClaims(c).UserID, userID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Trainer approved"})
}

func (h *UserHandler) RejectTrainer(c *gin.Context) {
	userID, ok := paramUUID(c, "id", httperr.ErrValidation("invalid_user_id", "Invalid userId"))
	if !ok {
		return
	}

	if _, err := h.reviewTrainer.Reject(c.Request.Context(), middleware.MustClaims(c).UserID, userID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Trainer rejected"})
}
