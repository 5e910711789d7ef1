package handlers

import (
	"errors"
	"net/http"

	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new account and returns a token pair
func (h *AuthHandler) Register(c *gin.Context) {
	var request services.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	response, err := h.authService.Register(c.Request.Context(), &request)
	if err != nil {
		if err.Error() == utils.ErrUserExists {
			utils.ConflictResponse(c, utils.ErrUserExists)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register: "+err.Error())
		return
	}

	utils.CreatedResponse(c, "Account created successfully", response)
}

// Login authenticates credentials and returns a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var request services.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", utils.ErrInvalidCredentials)
		case errors.Is(err, services.ErrAccountSuspended):
			utils.ForbiddenResponse(c)
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login: "+err.Error())
		}
		return
	}

	utils.SuccessResponse(c, "Logged in successfully", response)
}

// Logout invalidates the caller's session
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to logout: "+err.Error())
		return
	}

	utils.SuccessResponse(c, "Logged out successfully", nil)
}

// RefreshToken exchanges a refresh token for a new token pair
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var request struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	pair, err := h.authService.RefreshToken(c.Request.Context(), request.RefreshToken)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_TOKEN", utils.ErrInvalidToken)
		return
	}

	utils.SuccessResponse(c, "Token refreshed successfully", pair)
}

// Me returns the authenticated user's account
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondRepositoryError(c, err, "User")
		return
	}

	utils.SuccessResponse(c, "User retrieved successfully", user)
}

// ResendVerification issues a fresh email verification token
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	err := h.authService.ResendVerificationEmail(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyVerified) {
			utils.ConflictResponse(c, err.Error())
			return
		}
		respondRepositoryError(c, err, "User")
		return
	}

	utils.SuccessResponse(c, "Verification email sent", nil)
}

// VerifyEmail consumes a verification token
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var request struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.authService.VerifyEmail(c.Request.Context(), request.Token); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidToken)
		return
	}

	utils.SuccessResponse(c, "Email verified successfully", nil)
}

// currentUserID pulls the authenticated user from context. Writes the error
// response itself when the middleware did not run.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		utils.UnauthorizedResponse(c)
		return primitive.NilObjectID, false
	}

	userID, ok := value.(primitive.ObjectID)
	if !ok {
		utils.BadRequestResponse(c, "Invalid user ID")
		return primitive.NilObjectID, false
	}

	return userID, true
}
