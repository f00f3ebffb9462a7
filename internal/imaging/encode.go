package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-tools-mcp/internal/pixbuf"
)

// EncodedImage contains a buffer encoded as base64 PNG.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`

	// SavedTo is the output file path, if the image was also written to disk.
	SavedTo string `json:"saved_to,omitempty"`
}

// Encode converts a buffer into a base64 PNG result.
func Encode(buf *pixbuf.Buffer) (*EncodedImage, error) {
	var out bytes.Buffer
	if err := imaging.Encode(&out, buf.NRGBA(), imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       buf.Width(),
		Height:      buf.Height(),
		ImageBase64: base64.StdEncoding.EncodeToString(out.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes a buffer to path. The format follows the file extension.
func Save(buf *pixbuf.Buffer, path string) error {
	if err := imaging.Save(buf.NRGBA(), path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodeAndSave encodes a buffer and, when path is not empty, also saves it.
func EncodeAndSave(buf *pixbuf.Buffer, path string) (*EncodedImage, error) {
	result, err := Encode(buf)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := Save(buf, path); err != nil {
			return nil, err
		}
		result.SavedTo = path
	}
	return result, nil
}
