// Package imagemeta probes image buffers for their basic properties without
// decoding pixel data. OCR of embedded text is a deliberate extension
// point, not implemented.
package imagemeta

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Extract reports the image's dimensions as key:value lines.
func Extract(data []byte) (string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("probing image: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ImageSize: %dx%d\n", cfg.Width, cfg.Height)
	fmt.Fprintf(&b, "ImageFormat: %s\n", strings.ToUpper(format))

	return b.String(), nil
}
