package public

import (
	"time"

	"github.com/velora-shop/velora/internal/constants"
	"github.com/velora-shop/velora/internal/http/response"
	"github.com/velora-shop/velora/internal/models"
	"github.com/velora-shop/velora/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Phone    string `json:"phone" form:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authPayload struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// Register handles POST /auth/register. The body may be JSON or
// multipart; a multipart "profileImage" file is hosted before the
// account is created.
func (h *Handler) Register(c *gin.Context) {
	h.register(c, constants.RoleUser)
}

// RegisterAdmin handles POST /admin/auth/register (admin-only route).
func (h *Handler) RegisterAdmin(c *gin.Context) {
	h.register(c, constants.RoleAdmin)
}

func (h *Handler) register(c *gin.Context, role string) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	profileImage := ""
	if file, err := c.FormFile("profileImage"); err == nil && file != nil {
		url, err := h.UploadService.UploadImage(c.Request.Context(), file)
		if err != nil {
			respondAuthError(c, err)
			return
		}
		profileImage = url
	}

	user, token, expiresAt, err := h.AuthService.Register(service.RegisterInput{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		Phone:        req.Phone,
		ProfileImage: profileImage,
	}, role)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.Created(c, "registration successful", authPayload{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.Success(c, "login successful", authPayload{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// GetProfile handles GET /auth/profile.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.AuthService.GetProfile(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	response.Success(c, "profile fetched", user)
}

type updateProfileRequest struct {
	Username *string `json:"username" form:"username"`
	Phone    *string `json:"phone" form:"phone"`
}

// UpdateProfile handles PUT /auth/profile. Absent fields keep their
// current value; a multipart "profileImage" file replaces the image.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	input := service.UpdateProfileInput{
		Username: req.Username,
		Phone:    req.Phone,
	}
	if file, err := c.FormFile("profileImage"); err == nil && file != nil {
		url, err := h.UploadService.UploadImage(c.Request.Context(), file)
		if err != nil {
			respondAuthError(c, err)
			return
		}
		input.ProfileImage = &url
	}

	user, err := h.AuthService.UpdateProfile(userID, input)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	response.Success(c, "profile updated", user)
}
