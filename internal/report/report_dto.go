package report

type Stats struct {
	TotalDays      int     `json:"total_days"`
	PresentDays    int     `json:"present_days"`
	AbsentDays     int     `json:"absent_days"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type RecordEntry struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	MarkedBy string `json:"marked_by"`
}

type EmployeeSummaryResponse struct {
	EmployeeCode string        `json:"employee_code"`
	FullName     string        `json:"full_name"`
	Department   string        `json:"department"`
	From         string        `json:"from"`
	To           string        `json:"to"`
	Stats        Stats         `json:"stats"`
	Records      []RecordEntry `json:"records"`
}

type DepartmentStats struct {
	Department string `json:"department"`
	Employees  int    `json:"employees"`
	Stats      Stats  `json:"stats"`
}

type DepartmentAnalyticsResponse struct {
	From        string            `json:"from"`
	To          string            `json:"to"`
	Departments []DepartmentStats `json:"departments"`
}

type MonthlyEmployeeRow struct {
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Department   string `json:"department"`
	Stats        Stats  `json:"stats"`
}

type MonthlyReportResponse struct {
	Month     string               `json:"month"`
	Employees []MonthlyEmployeeRow `json:"employees"`
	Overall   Stats                `json:"overall"`
}
