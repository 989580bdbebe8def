package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBytes_Formats(t *testing.T) {
	img := testImage(8, 6)
	tests := []struct {
		name string
		data []byte
	}{
		{"png", encodePNG(t, img)},
		{"jpeg", encodeJPEG(t, img)},
		{"bmp", encodeBMP(t, img)},
		{"tiff", encodeTIFF(t, img)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DecodeBytes(tt.data)
			require.NoError(t, r.Err)
			require.NotNil(t, r.Image)
			assert.Equal(t, 8, r.Image.Bounds().Dx())
			assert.Equal(t, 6, r.Image.Bounds().Dy())
		})
	}
}

func TestDecodeBytes_EmptyPayloadHasNoImage(t *testing.T) {
	r := DecodeBytes(nil)
	assert.Nil(t, r.Image)
	assert.NoError(t, r.Err)
}

func TestDecodeBytes_UnsupportedPayloadHasNoImage(t *testing.T) {
	r := DecodeBytes([]byte("just some notes, not a picture\n"))
	assert.Nil(t, r.Image)
	assert.NoError(t, r.Err)
}

func TestDecodeBytes_TruncatedImageFails(t *testing.T) {
	data := encodePNG(t, testImage(16, 16))
	r := DecodeBytes(data[:len(data)/2])
	assert.Nil(t, r.Image)
	require.Error(t, r.Err)
	assert.Contains(t, r.Err.Error(), "image/png")
}

func TestSupportedTypes(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"image/png", "image/jpeg", "image/gif", "image/bmp", "image/tiff", "image/webp"},
		SupportedTypes())
}
