package model

// CarrierFile is an image file that can hold or already holds a hidden message
type CarrierFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}
