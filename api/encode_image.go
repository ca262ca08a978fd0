package api

type EncodeImageRequest struct {
	ImageToEncode []byte `json:"image_to_encode" binding:"required"`
	Message       string `json:"message"`
	// PngCompression is one of default, none, fast or best
	PngCompression string `json:"png_compression,omitempty"`
	// OutputFormat is png or bmp, png when empty
	OutputFormat string `json:"output_format,omitempty"`
}

type EncodeImageResponse struct {
	EncodedImage     []byte `json:"encoded_image"`
	Capacity         int    `json:"capacity"`
	MessageLength    int    `json:"message_length"`
	Truncated        bool   `json:"truncated"`
	TerminatorStored bool   `json:"terminator_stored"`
}
