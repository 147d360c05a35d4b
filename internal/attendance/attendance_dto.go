package attendance

type MarkRequest struct {
	EmployeeCode string `json:"employee_code" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Status       string `json:"status" binding:"required,oneof=PRESENT ABSENT"`
}

type MarkBulkRequest struct {
	Date          string   `json:"date" binding:"required"`
	Status        string   `json:"status" binding:"required,oneof=PRESENT ABSENT"`
	EmployeeCodes []string `json:"employee_codes" binding:"required,min=1"`
}

type EditRequest struct {
	Status string `json:"status" binding:"required,oneof=PRESENT ABSENT"`
	Reason string `json:"reason" binding:"required"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	MarkedBy     string  `json:"marked_by"`
	Note         *string `json:"note,omitempty"`
	UpdatedBy    *string `json:"updated_by,omitempty"`
	UpdatedAt    *string `json:"updated_at,omitempty"`
}

type BulkMarkItemResult struct {
	EmployeeCode string `json:"employee_code"`
	Marked       bool   `json:"marked"`
	Error        string `json:"error,omitempty"`
}

type BulkMarkResponse struct {
	Date    string               `json:"date"`
	Marked  int                  `json:"marked"`
	Skipped int                  `json:"skipped"`
	Results []BulkMarkItemResult `json:"results"`
}

type UnmarkedEmployeeResponse struct {
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Department   string `json:"department"`
}
