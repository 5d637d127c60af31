package dto

// CreateProfileRequest payload for the admin user manager.
type CreateProfileRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	ClientID *string `json:"client_id"`
	Template string  `json:"template"`
}

// UpdateProfileRequest payload.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SetPermissionsRequest replaces the stored flag set wholesale.
type SetPermissionsRequest struct {
	Permissions map[string]bool `json:"permissions"`
}

// ApplyTemplateRequest applies a named permission template.
type ApplyTemplateRequest struct {
	Template string `json:"template"`
}

// SetActiveRequest toggles an account.
type SetActiveRequest struct {
	Active bool `json:"active"`
}
