package upload

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const (
	MaxFileSize    = 25 * 1024 * 1024 // 25 MB
	UploadsBaseDir = "./uploads"
	StaticURLBase  = "/static/uploads"

	thumbnailMaxPx = 300
)

// AllowedMimeTypes lists the image formats accepted for event, banner
// and avatar imagery.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Result describes a stored image. ThumbURL is empty for formats the
// thumbnailer cannot decode.
type Result struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"name"`
	URL          string    `json:"url"`
	ThumbURL     string    `json:"thumb_url,omitempty"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

// Service stores uploaded images on local disk under date-partitioned
// directories and serves them through a static route.
type Service struct {
	baseDir    string
	staticBase string
}

func NewService(baseDir, staticBase string) *Service {
	if baseDir == "" {
		baseDir = UploadsBaseDir
	}
	if staticBase == "" {
		staticBase = StaticURLBase
	}
	return &Service{baseDir: baseDir, staticBase: staticBase}
}

// Save writes the image to disk and generates a 300px thumbnail next to
// it. The returned URLs are what callers store on events and banners.
func (s *Service) Save(fileHeader *multipart.FileHeader) (*Result, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Sniff the real type from content, not the client-sent header
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !AllowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind file: %w", err)
	}

	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	id := uuid.NewString()
	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := id + ext

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to flush file: %w", err)
	}

	res := &Result{
		ID:           id,
		OriginalName: fileHeader.Filename,
		URL:          s.publicURL(relDir, filename),
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		CreatedAt:    now,
	}

	// Thumbnails are best effort; gif/webp originals are served as is
	if thumbName, err := s.writeThumbnail(absPath, absDir, id, mimeType); err == nil && thumbName != "" {
		res.ThumbURL = s.publicURL(relDir, thumbName)
	}

	return res, nil
}

func (s *Service) publicURL(relDir, filename string) string {
	return s.staticBase + "/" + strings.ReplaceAll(filepath.Join(relDir, filename), "\\", "/")
}

func (s *Service) writeThumbnail(srcPath, absDir, id, mimeType string) (string, error) {
	if mimeType != "image/jpeg" && mimeType != "image/png" {
		return "", nil
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", err
	}

	thumb := resize.Thumbnail(thumbnailMaxPx, thumbnailMaxPx, img, resize.Lanczos3)

	thumbName := id + "_thumb" + mimeToExt(mimeType)
	out, err := os.Create(filepath.Join(absDir, thumbName))
	if err != nil {
		return "", err
	}
	defer out.Close()

	switch mimeType {
	case "image/png":
		err = png.Encode(out, thumb)
	default:
		err = jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		_ = os.Remove(filepath.Join(absDir, thumbName))
		return "", err
	}
	return thumbName, nil
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
