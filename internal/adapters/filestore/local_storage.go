package filestore

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Регистрация декодеров для image.Decode.
	_ "image/gif"
	_ "image/png"

	"github.com/corona10/goimagehash"
	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/core/port"
)

const (
	propertiesSubdir = "properties"
	thumbsSubdir     = "thumbs"
	thumbMaxSize     = 320
)

// LocalStorage - файловое хранилище изображений на локальном диске.
// Файлы кладутся в <baseDir>/properties, миниатюры в <baseDir>/properties/thumbs.
type LocalStorage struct {
	baseDir string
	// urlPrefix - префикс относительных путей, под которым каталог
	// отдается статикой (обычно "uploads").
	urlPrefix string
}

func NewLocalStorage(baseDir, urlPrefix string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("base directory cannot be empty")
	}
	for _, dir := range []string{
		filepath.Join(baseDir, propertiesSubdir),
		filepath.Join(baseDir, propertiesSubdir, thumbsSubdir),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}
	return &LocalStorage{baseDir: baseDir, urlPrefix: strings.Trim(urlPrefix, "/")}, nil
}

// SaveImage пишет оригинал на диск, считает перцептивный хэш и генерирует
// jpeg-миниатюру. Битая картинка (не декодируется) сохраняется без хэша
// и миниатюры: загрузка важнее дедупликации.
func (s *LocalStorage) SaveImage(ctx context.Context, originalName string, r io.Reader) (*port.StoredImage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storeLogger := logger.WithFields(port.Fields{
		"component": "LocalStorage",
		"method":    "SaveImage",
		"file_name": originalName,
	})

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	fileName := fmt.Sprintf("property-%s%s", uuid.New().String(), ext)
	fullPath := filepath.Join(s.baseDir, propertiesSubdir, fileName)

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write image file: %w", err)
	}

	stored := &port.StoredImage{
		URL: s.urlPrefix + "/" + propertiesSubdir + "/" + fileName,
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		storeLogger.Warn("Image could not be decoded, skipping phash and thumbnail", port.Fields{"error": err.Error()})
		return stored, nil
	}

	if hash, err := goimagehash.PerceptionHash(img); err != nil {
		storeLogger.Warn("Failed to compute perception hash", port.Fields{"error": err.Error()})
	} else {
		stored.Phash = hash.GetHash()
	}

	thumb := resize.Thumbnail(thumbMaxSize, thumbMaxSize, img, resize.Lanczos3)
	thumbPath := filepath.Join(s.baseDir, propertiesSubdir, thumbsSubdir, thumbName(fileName))
	thumbFile, err := os.Create(thumbPath)
	if err != nil {
		storeLogger.Warn("Failed to create thumbnail file", port.Fields{"error": err.Error()})
		return stored, nil
	}
	defer thumbFile.Close()
	if err := jpeg.Encode(thumbFile, thumb, &jpeg.Options{Quality: 80}); err != nil {
		storeLogger.Warn("Failed to encode thumbnail", port.Fields{"error": err.Error()})
	}

	storeLogger.Debug("Image stored.", port.Fields{"url": stored.URL})
	return stored, nil
}

// Remove удаляет файл и его миниатюру по относительному пути.
func (s *LocalStorage) Remove(relPath string) error {
	fileName := filepath.Base(relPath)
	if fileName == "." || fileName == "/" || fileName == "" {
		return nil
	}

	fullPath := filepath.Join(s.baseDir, propertiesSubdir, fileName)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image file: %w", err)
	}

	thumbPath := filepath.Join(s.baseDir, propertiesSubdir, thumbsSubdir, thumbName(fileName))
	if err := os.Remove(thumbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove thumbnail file: %w", err)
	}

	return nil
}

// thumbName - имя миниатюры: то же имя, но всегда .jpg.
func thumbName(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName)) + ".jpg"
}
