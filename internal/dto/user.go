package dto

// RegisterRequest is the JSON body for POST /user/register and POST /admin/register.
// Deliberately no binding tags: the service validates the candidate record
// itself, identifier presence first, so the "email or phone" failure wins over
// any other missing field.
type RegisterRequest struct {
	Email        string `json:"email" example:"a@x.com"`
	Phone        string `json:"phone" example:"+15550001111"`
	Name         string `json:"name" example:"Alice"`
	Password     string `json:"password" example:"s3cret"`
	ProfileImage string `json:"profileImage" example:"https://cdn.example.com/a.png"`
}

// LoginRequest is the JSON body for POST /user/login and POST /admin/login.
type LoginRequest struct {
	Email    string `json:"email" example:"a@x.com"`
	Phone    string `json:"phone" example:"+15550001111"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// UpdateProfileRequest is the JSON body for PUT /user and PUT /user/{id}.
// Only name and profileImage are writable post-creation.
type UpdateProfileRequest struct {
	Name         string `json:"name" binding:"required" example:"Alice"`
	ProfileImage string `json:"profileImage" example:"https://cdn.example.com/a.png"`
}

// ProfileResponse is the account projection returned by the profile endpoints.
type ProfileResponse struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// LoginResponse is returned on successful login. IsAdmin is set only on the
// admin path.
type LoginResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
	Token   string `json:"token"`
}

// ListUsersResponse wraps the admin listing of every account.
type ListUsersResponse struct {
	Users []ProfileResponse `json:"users"`
}

// MessageResponse is the generic success body for writes.
type MessageResponse struct {
	Message string `json:"message"`
}
