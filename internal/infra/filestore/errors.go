package filestore

import "errors"

var (
	// ErrEmptyFile возвращается для пустого файла
	ErrEmptyFile = errors.New("filestore: empty file")

	// ErrFileTooLarge возвращается, если файл больше допустимого размера
	ErrFileTooLarge = errors.New("filestore: file too large")

	// ErrInvalidContentType возвращается, если тип файла не соответствует виду (фото/видео)
	ErrInvalidContentType = errors.New("filestore: invalid content type")

	// ErrStorage возвращается при ошибках записи на диск
	ErrStorage = errors.New("filestore: storage error")
)
