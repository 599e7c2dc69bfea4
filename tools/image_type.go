package tools

import "bytes"

type ImageType string

const (
	ImageTypePNG     ImageType = "png"
	ImageTypeJPEG    ImageType = "jpeg"
	ImageTypeGIF     ImageType = "gif"
	ImageTypeWEBP    ImageType = "webp"
	ImageTypeUnknown ImageType = "bin"
)

func (i ImageType) String() string {
	return string(i)
}

// DetectImageType sniffs the magic bytes of the common web image formats.
func DetectImageType(b []byte) ImageType {
	switch {
	case len(b) >= 8 && bytes.Equal(b[:8], []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}):
		return ImageTypePNG
	case len(b) >= 3 && bytes.Equal(b[:3], []byte{0xFF, 0xD8, 0xFF}):
		return ImageTypeJPEG
	case len(b) >= 6 && (bytes.Equal(b[:6], []byte("GIF87a")) || bytes.Equal(b[:6], []byte("GIF89a"))):
		return ImageTypeGIF
	case len(b) >= 12 && bytes.Equal(b[:4], []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP")):
		return ImageTypeWEBP
	default:
		return ImageTypeUnknown
	}
}

// MimeType maps the detected format to a content type, defaulting to PNG
// since that is what the provider returns for inline image data.
func (i ImageType) MimeType() string {
	switch i {
	case ImageTypeJPEG:
		return "image/jpeg"
	case ImageTypeGIF:
		return "image/gif"
	case ImageTypeWEBP:
		return "image/webp"
	default:
		return "image/png"
	}
}
