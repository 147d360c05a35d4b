package editlog

import "time"

type EditLogResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	Date         string `json:"date"`
	OldStatus    string `json:"old_status"`
	NewStatus    string `json:"new_status"`
	Reason       string `json:"reason"`
	EditedBy     string `json:"edited_by"`
	EditedAt     string `json:"edited_at"`
}

func MapToResponse(l EditLog) EditLogResponse {
	return EditLogResponse{
		ID:           l.ID.String(),
		EmployeeCode: l.EmployeeCode,
		Date:         l.AttendanceDate.Format("2006-01-02"),
		OldStatus:    l.OldStatus,
		NewStatus:    l.NewStatus,
		Reason:       l.Reason,
		EditedBy:     l.EditedBy,
		EditedAt:     l.EditedAt.Format(time.RFC3339),
	}
}
