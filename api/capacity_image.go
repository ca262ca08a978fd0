package api

type CapacityImageRequest struct {
	Image []byte `json:"image" binding:"required"`
}

type CapacityImageResponse struct {
	Width            int `json:"width"`
	Height           int `json:"height"`
	Capacity         int `json:"capacity"`
	MaxMessageLength int `json:"max_message_length"`
}
