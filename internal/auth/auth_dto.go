package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"user_type" binding:"required,oneof=ADMIN EMPLOYEE"`
}

type AuthResponse struct {
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	EmployeeCode string `json:"employee_code,omitempty"`
}
