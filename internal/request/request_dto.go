package request

type SubmitRequest struct {
	Date    string `json:"date" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ResolveRequest struct {
	Decision string `json:"decision" binding:"required,oneof=APPROVE REJECT"`
}

type RequestResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name,omitempty"`
	Date         string  `json:"date"`
	Message      string  `json:"message"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	ResolvedBy   *string `json:"resolved_by,omitempty"`
	ResolvedAt   *string `json:"resolved_at,omitempty"`
}
