package auth

// Swagger API metadata is defined globally in cmd/api/main.go

import (
	"github.com/gin-gonic/gin"

	"github.com/durvibangera/sorte/internal/middleware"
	"github.com/durvibangera/sorte/internal/pkg/cloudinary"
	"github.com/durvibangera/sorte/internal/pkg/response"
	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account with name, email and password; school, yearLevel and birthday default when omitted
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User registration data"
// @Success 201 {object} response.APIResponse{data=AuthResponse}
// @Failure 400 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Failure 429 {object} response.APIResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.FromError(c, err)
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, result, "User registered successfully")
}

// Login godoc
// @Summary Login user
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "User login credentials"
// @Success 200 {object} response.APIResponse{data=AuthResponse}
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Failure 429 {object} response.APIResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateLogin(&req); err != nil {
		response.FromError(c, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

// GoogleLogin godoc
// @Summary Sign in with Google
// @Description Verify a Google ID token, linking or creating the account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleAuthRequest true "Google ID token"
// @Success 200 {object} response.APIResponse{data=AuthResponse}
// @Failure 401 {object} response.APIResponse
// @Failure 503 {object} response.APIResponse
// @Router /auth/google [post]
func (h *Handler) GoogleLogin(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	result, err := h.service.GoogleLogin(c.Request.Context(), req.GoogleIDToken)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

// GetProfile godoc
// @Summary Get current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=PublicUser}
// @Failure 401 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /auth/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.service.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, user)
}

// UpdateProfile godoc
// @Summary Update current user profile
// @Description Patch name, school, yearLevel or birthday; omitted fields keep their values
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.APIResponse{data=PublicUser}
// @Failure 401 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /auth/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), middleware.UserID(c), c.GetString(middleware.ContextEmail), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, user, "Profile updated successfully")
}

// UploadAvatar godoc
// @Summary Upload profile picture
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file (jpg, png, gif, webp; max 5MB)"
// @Success 200 {object} response.APIResponse{data=PublicUser}
// @Failure 401 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Failure 503 {object} response.APIResponse
// @Router /auth/profile/avatar [post]
func (h *Handler) UploadAvatar(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		response.FromError(c, apperrors.Validation("Image file is required"))
		return
	}

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.FromError(c, apperrors.Validation("%s", err.Error()))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.FromError(c, apperrors.Validation("Image file could not be read"))
		return
	}
	defer file.Close()

	user, err := h.service.UploadAvatar(c.Request.Context(), middleware.UserID(c), file, header.Filename)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, user, "Profile picture updated")
}
