package schema

// Role drives which dashboard a user sees.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDoctor     Role = "doctor"
	RoleDiagnostic Role = "diagnostic"
	RoleEmployee   Role = "employee"
	RoleUser       Role = "user"
)

type (
	// User is the authenticated principal returned by login and profile.
	User struct {
		ID         string `json:"_id,omitempty"`
		Name       string `json:"name,omitempty"`
		Email      string `json:"email"`
		Role       Role   `json:"role"`
		EmployeeID string `json:"employeeId,omitempty"`
		CenterID   string `json:"centerId,omitempty"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginResponse struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		User         *User  `json:"user"`
	}

	ProfileResponse struct {
		User *User `json:"user"`
	}

	RefreshRequest struct {
		Token string `json:"token"`
	}

	RefreshResponse struct {
		AccessToken string `json:"accessToken"`
	}

	// Result is the generic acknowledgement of mutating calls.
	Result struct {
		Success bool   `json:"success"`
		Message string `json:"message,omitempty"`
	}
)
