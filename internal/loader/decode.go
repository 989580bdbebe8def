package loader

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"photopick/internal/picker"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

type decoder struct {
	mime   string
	decode func(io.Reader) (image.Image, error)
}

// decoders is checked in order against the sniffed content type.
var decoders = []decoder{
	{"image/png", png.Decode},
	{"image/jpeg", jpeg.Decode},
	{"image/gif", gif.Decode},
	{"image/bmp", bmp.Decode},
	{"image/tiff", tiff.Decode},
	{"image/webp", webp.Decode},
}

// SupportedTypes lists the content types DecodeBytes can turn into an image.
func SupportedTypes() []string {
	out := make([]string, len(decoders))
	for i, d := range decoders {
		out[i] = d.mime
	}
	return out
}

// DecodeBytes turns a payload into a picker result. An empty payload or one
// whose sniffed type has no decoder yields neither image nor error.
func DecodeBytes(data []byte) picker.Result {
	if len(data) == 0 {
		return picker.Result{}
	}

	mt := mimetype.Detect(data)
	for _, d := range decoders {
		if !mt.Is(d.mime) {
			continue
		}
		img, err := d.decode(bytes.NewReader(data))
		if err != nil {
			return picker.Result{Err: fmt.Errorf("decode %s: %w", d.mime, err)}
		}
		return picker.Result{Image: img}
	}
	return picker.Result{}
}
