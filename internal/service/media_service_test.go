package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"moodrealm/internal/media"
	"moodrealm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestMediaService_Upload(t *testing.T) {
	dir := t.TempDir()
	store, err := media.NewLocalStore(dir, "http://localhost:5000")
	require.NoError(t, err)
	svc := NewMediaService(store, 0)
	assert.Equal(t, int64(3*1024*1024), svc.MaxUploadSizeBytes())

	res, err := svc.Upload(context.Background(), UploadImageInput{UserID: 1, Filename: "a.png", Content: pngBytes(t, 64, 32)})
	require.NoError(t, err)
	assert.Len(t, res.PublicID, 32)
	assert.Equal(t, "http://localhost:5000/media/images/"+res.PublicID+".webp", res.URL)

	data, err := os.ReadFile(filepath.Join(dir, "images", res.PublicID+".webp"))
	require.NoError(t, err)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "webp", format)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
}

func TestMediaService_Upload_Rejects(t *testing.T) {
	store, err := media.NewLocalStore(t.TempDir(), "")
	require.NoError(t, err)
	svc := NewMediaService(store, 1)

	tests := []struct {
		name    string
		content []byte
		wantMsg string
	}{
		{"Empty", nil, "No file uploaded"},
		{"Too Large", make([]byte, 1024*1024+1), "File too large (max 1MB)"},
		{"Not An Image", []byte("%PDF-1.4 not an image"), "Only image files are allowed"},
		{"Truncated Image", pngBytes(t, 8, 8)[:40], "Invalid image file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), UploadImageInput{UserID: 1, Content: tt.content})
			assert.Equal(t, 400, models.StatusCode(err))
			assert.Equal(t, tt.wantMsg, models.PublicMessage(err))
		})
	}
}

func TestMediaService_Upload_DeclaredContentType(t *testing.T) {
	store, err := media.NewLocalStore(t.TempDir(), "")
	require.NoError(t, err)
	svc := NewMediaService(store, 1)
	img := pngBytes(t, 8, 8)

	tests := []struct {
		name        string
		contentType string
		wantErr     bool
	}{
		{"Missing", "", false},
		{"Image", "image/png", false},
		{"Image With Params", "image/jpeg; charset=binary", false},
		{"Generic", "application/octet-stream", false},
		{"Pdf", "application/pdf", true},
		{"Text", "text/plain", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), UploadImageInput{
				UserID: 1, Filename: "../../photo.png", ContentType: tt.contentType, Content: img,
			})
			if tt.wantErr {
				assert.Equal(t, "Only image files are allowed", models.PublicMessage(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestResizeToFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4000, 1000))
	out := resizeToFit(src, MaxImageDimension, MaxImageDimension)
	assert.Equal(t, 2048, out.Bounds().Dx())
	assert.Equal(t, 512, out.Bounds().Dy())

	small := image.NewRGBA(image.Rect(0, 0, 10, 10))
	assert.Same(t, small, resizeToFit(small, MaxImageDimension, MaxImageDimension))
}

func TestImageHash_DependsOnUser(t *testing.T) {
	content := []byte("same bytes")
	assert.NotEqual(t, imageHash(1, content), imageHash(2, content))
	assert.Equal(t, imageHash(1, content), imageHash(1, content))
}
