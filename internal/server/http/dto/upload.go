package dto

// UploadRequest carries a base64 data URI to host.
type UploadRequest struct {
	Data   string `json:"data"`
	Folder string `json:"folder,omitempty"`
}

// UploadResponse returns the hosted image descriptor.
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
