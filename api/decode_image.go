package api

type DecodeImageRequest struct {
	ImageToDecode []byte `json:"image_to_decode" binding:"required"`
}

type DecodeImageResponse struct {
	// Message is empty when no hidden message was found
	Message string `json:"message"`
	Found   bool   `json:"found"`
}
