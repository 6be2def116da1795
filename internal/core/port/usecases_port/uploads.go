package usecases_port

import "io"

// ImageUpload - загруженный файл изображения, как его передает REST-адаптер.
type ImageUpload struct {
	FileName string
	Content  io.Reader
}
