package handlers

import (
	"errors"
	"net/http"

	"github.com/nipun221/user-admin-ds/internal/auth"
	"github.com/nipun221/user-admin-ds/internal/dto"
	"github.com/nipun221/user-admin-ds/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login for both tiers. The two Issuers
// are the only thing separating a user session from an admin session.
type AuthHandler struct {
	svc         *service.UserService
	userTokens  *auth.Issuer
	adminTokens *auth.Issuer
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(svc *service.UserService, userTokens, adminTokens *auth.Issuer) *AuthHandler {
	return &AuthHandler{svc: svc, userTokens: userTokens, adminTokens: adminTokens}
}

// RegisterUser godoc
// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Account"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  map[string]string
// @Router       /user/register [post]
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	h.register(c, false, "User registered successfully")
}

// RegisterAdmin godoc
// @Summary      Register an admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Account"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  map[string]string
// @Router       /admin/register [post]
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	h.register(c, true, "Admin registered successfully")
}

func (h *AuthHandler) register(c *gin.Context, isAdmin bool, successMsg string) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, err := h.svc.Register(c.Request.Context(), service.RegisterParams{
		Email:        req.Email,
		Phone:        req.Phone,
		Name:         req.Name,
		Password:     req.Password,
		ProfileImage: req.ProfileImage,
	}, isAdmin)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: successMsg})
}

// LoginUser godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /user/login [post]
func (h *AuthHandler) LoginUser(c *gin.Context) {
	h.login(c, false, h.userTokens)
}

// LoginAdmin godoc
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /admin/login [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	h.login(c, true, h.adminTokens)
}

func (h *AuthHandler) login(c *gin.Context, adminOnly bool, tokens *auth.Issuer) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Authenticate(c.Request.Context(), req.Email, req.Phone, req.Password, adminOnly)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Unknown identifier and wrong password answer identically.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := tokens.Issue(u.ID.Hex())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		IsAdmin: adminOnly && u.IsAdmin,
		Token:   token,
	})
}
