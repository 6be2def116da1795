package port

import (
	"context"
	"io"
)

// StoredImage - результат сохранения загруженного изображения.
type StoredImage struct {
	// URL - относительный путь вида "uploads/properties/property-<uuid>.jpg",
	// по которому файл отдается статикой.
	URL string
	// Phash - перцептивный хэш изображения для поиска дубликатов.
	Phash uint64
}

// FileStoragePort - контракт файлового хранилища изображений.
// Реализация отвечает за имена файлов и миниатюры.
type FileStoragePort interface {
	// SaveImage сохраняет изображение, генерирует миниатюру и считает phash.
	// originalName нужен только для расширения файла.
	SaveImage(ctx context.Context, originalName string, r io.Reader) (*StoredImage, error)

	// Remove удаляет файл (и его миниатюру) по относительному пути.
	// Отсутствующий файл ошибкой не считается.
	Remove(relPath string) error
}
