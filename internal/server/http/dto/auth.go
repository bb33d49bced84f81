package dto

// IdentifyRequest carries the customer's self-declared identity.
type IdentifyRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// AdminLoginRequest carries the dashboard password.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AuthResponse returns the issued token and the resolved principal.
type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}
