package employee

type CreateEmployeeRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Department string `json:"department" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Username   string `json:"username" binding:"required,min=3"`
	Password   string `json:"password" binding:"required,min=6"`
	JoinDate   string `json:"join_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName   string  `json:"full_name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone"`
	Department string  `json:"department" binding:"required"`
	Position   string  `json:"position" binding:"required"`
	Password   *string `json:"password,omitempty"`
}

type EmployeeResponse struct {
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	Username     string `json:"username"`
	JoinDate     string `json:"join_date"`
	IsActive     bool   `json:"is_active"`
}

// EmployeeOption dipakai dropdown/daftar saat marking attendance
type EmployeeOption struct {
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Department   string `json:"department"`
}
