package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"moodrealm/internal/media"
	"moodrealm/internal/middleware"
	"moodrealm/internal/models"
	"moodrealm/internal/observability"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	DefaultUploadMaxSizeMB = 3
	MaxImageDimension      = 2048
	WebPQuality            = 70
)

// UploadImageInput is one uploaded file. ContentType is the client-declared
// part header; it is checked before the bytes are sniffed.
type UploadImageInput struct {
	UserID      uint
	Filename    string
	ContentType string
	Content     []byte
}

// UploadResult is the reply to an image upload.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// MediaService normalises uploaded images to WebP and stores them.
type MediaService struct {
	store              media.Store
	maxUploadSizeBytes int64
}

func NewMediaService(store media.Store, maxUploadSizeMB int) *MediaService {
	if maxUploadSizeMB <= 0 {
		maxUploadSizeMB = DefaultUploadMaxSizeMB
	}
	return &MediaService{
		store:              store,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// MaxUploadSizeBytes is the largest accepted upload.
func (s *MediaService) MaxUploadSizeBytes() int64 {
	return s.maxUploadSizeBytes
}

func (s *MediaService) Upload(ctx context.Context, in UploadImageInput) (*UploadResult, error) {
	result, err := s.upload(ctx, in)
	if err != nil {
		observability.MediaUploads.WithLabelValues("rejected").Inc()
		return nil, err
	}
	observability.MediaUploads.WithLabelValues("stored").Inc()
	return result, nil
}

func (s *MediaService) upload(ctx context.Context, in UploadImageInput) (*UploadResult, error) {
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	if int64(len(in.Content)) > s.maxUploadSizeBytes {
		return nil, models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}
	if !declaredImage(in.ContentType) || !isAllowedImageMIME(http.DetectContentType(in.Content)) {
		return nil, models.NewValidationError("Only image files are allowed")
	}

	decoded, _, err := image.Decode(bytes.NewReader(in.Content))
	if err != nil {
		return nil, models.NewValidationError("Invalid image file")
	}

	encoded, err := encodeWebP(resizeToFit(decoded, MaxImageDimension, MaxImageDimension), WebPQuality)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	publicID := imageHash(in.UserID, encoded)
	key := "images/" + publicID + ".webp"
	if err := s.store.Put(ctx, key, "image/webp", encoded); err != nil {
		return nil, models.NewInternalError(err)
	}
	middleware.Logger.InfoContext(ctx, "image stored",
		"user_id", in.UserID,
		"filename", filepath.Base(in.Filename),
		"public_id", publicID,
		"bytes", len(encoded),
	)

	return &UploadResult{URL: s.store.URL(key), PublicID: publicID}, nil
}

func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 || (w <= maxWidth && h <= maxHeight) {
		return src
	}

	scale := float64(maxWidth) / float64(w)
	if s := float64(maxHeight) / float64(h); s < scale {
		scale = s
	}
	newW := max(int(float64(w)*scale), 1)
	newH := max(int(float64(h)*scale), 1)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeWebP(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// declaredImage accepts a missing or generic part type; anything else must be image/*.
func declaredImage(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.TrimSpace(contentType) == ""
	}
	return mediaType == "application/octet-stream" || strings.HasPrefix(mediaType, "image/")
}

func isAllowedImageMIME(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

func imageHash(userID uint, content []byte) string {
	h := sha256.New()
	h.Write([]byte(strconv.FormatUint(uint64(userID), 10)))
	h.Write([]byte{':'})
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))[:32]
}
