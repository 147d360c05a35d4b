package tbtimage

type UploadRequest struct {
	Date     string `json:"date" binding:"required"`
	FileName string `json:"file_name" binding:"required"`
	Format   string `json:"format" binding:"required,oneof=png jpg jpeg webp"`
	Payload  string `json:"payload" binding:"required"`
}

type ImageResponse struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	FileName   string `json:"file_name"`
	Format     string `json:"format"`
	SizeBytes  int64  `json:"size_bytes"`
	Payload    string `json:"payload,omitempty"`
	UploadedBy string `json:"uploaded_by"`
	UploadedAt string `json:"uploaded_at"`
}

type DeleteAllResponse struct {
	Date    string `json:"date"`
	Deleted int64  `json:"deleted"`
}
