package response

import "github.com/gin-gonic/gin"

// Error is the single client-visible failure shape. No internal error
// detail leaks through it.
func Error(message string) gin.H {
	return gin.H{"error": message}
}

const (
	MsgNoPrompt         = "No prompt provided"
	MsgNoImage          = "No image provided"
	MsgBadImageEncoding = "Invalid image encoding"
	MsgGenerationFailed = "Image generation failed"
	MsgInternalError    = "Internal server error"
	MsgUploadFailed     = "Upload failed"
	MsgListFailed       = "Failed to load images"
)
