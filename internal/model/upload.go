package model

// UploadResult is returned after a map image has been stored.
// Scaled is always false: uploads are stored as received.
type UploadResult struct {
	Success bool   `json:"success"`
	MapFile string `json:"mapFile"`
	Scaled  bool   `json:"scaled"`
}
