package handlers

import (
	"net/http"

	"github.com/nipun221/user-admin-ds/internal/auth"
	dom "github.com/nipun221/user-admin-ds/internal/domain"
	"github.com/nipun221/user-admin-ds/internal/dto"
	"github.com/nipun221/user-admin-ds/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles self-service profile routes (user tier) and the
// CRUD-on-any-account routes (admin tier). Which tier a request carries is
// decided entirely by the guard in front of the route; the handlers only
// differ in where the account id comes from.
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler returns a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Protected godoc
// @Summary      Probe for a valid user token
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  dto.MessageResponse
// @Router       /protected [get]
func (h *UserHandler) Protected(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Protected route"})
}

// GetSelf godoc
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  dto.ProfileResponse
// @Failure      400  {object}  map[string]string
// @Router       /user [get]
func (h *UserHandler) GetSelf(c *gin.Context) {
	h.get(c, auth.UserIDFromContext(c))
}

// GetByID godoc
// @Summary      Get any profile by id
// @Tags         admin
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      400  {object}  map[string]string
// @Router       /user/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	h.get(c, c.Param("id"))
}

func (h *UserHandler) get(c *gin.Context, id string) {
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, userToProfile(u))
}

// UpdateSelf godoc
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      dto.UpdateProfileRequest  true  "Profile"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  map[string]string
// @Router       /user [put]
func (h *UserHandler) UpdateSelf(c *gin.Context) {
	h.update(c, auth.UserIDFromContext(c))
}

// UpdateByID godoc
// @Summary      Update any profile by id
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string  true  "Account ID"
// @Param        body  body      dto.UpdateProfileRequest  true  "Profile"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  map[string]string
// @Router       /user/{id} [put]
func (h *UserHandler) UpdateByID(c *gin.Context) {
	h.update(c, c.Param("id"))
}

func (h *UserHandler) update(c *gin.Context, id string) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.UpdateProfile(c.Request.Context(), id, req.Name, req.ProfileImage); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User updated successfully"})
}

// DeleteSelf godoc
// @Summary      Delete own account
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  map[string]string
// @Router       /user [delete]
func (h *UserHandler) DeleteSelf(c *gin.Context) {
	h.delete(c, auth.UserIDFromContext(c))
}

// DeleteByID godoc
// @Summary      Delete any account by id
// @Tags         admin
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  map[string]string
// @Router       /user/{id} [delete]
func (h *UserHandler) DeleteByID(c *gin.Context) {
	h.delete(c, c.Param("id"))
}

func (h *UserHandler) delete(c *gin.Context, id string) {
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}

// ListAll godoc
// @Summary      List every account
// @Tags         admin
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  dto.ListUsersResponse
// @Failure      400  {object}  map[string]string
// @Router       /allUsers [get]
func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.ProfileResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToProfile(u))
	}
	c.JSON(http.StatusOK, dto.ListUsersResponse{Users: out})
}

func userToProfile(u dom.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		UserID:       u.ID.Hex(),
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImage,
	}
}
