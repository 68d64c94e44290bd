// Package filestore хранит загруженные результаты фотосессий и работы портфолио на локальном диске
package filestore

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Kind вид сохраняемого файла
type Kind string

const (
	KindPhoto     Kind = "photos"
	KindVideo     Kind = "videos"
	KindPortfolio Kind = "portfolio"
)

// extensions допустимые типы по содержимому и расширение, под которым файл ляжет на диск.
// Тип, которого нет в списке (в том числе image/svg+xml), не сохраняется.
var extensions = map[Kind]map[string]string{
	KindPhoto: {
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/gif":  ".gif",
		"image/webp": ".webp",
		"image/heic": ".heic",
		"image/heif": ".heif",
		"image/tiff": ".tiff",
		"image/bmp":  ".bmp",
	},
	KindVideo: {
		"video/mp4":        ".mp4",
		"video/quicktime":  ".mov",
		"video/webm":       ".webm",
		"video/x-msvideo":  ".avi",
		"video/x-matroska": ".mkv",
		"video/mpeg":       ".mpeg",
		"video/3gpp":       ".3gp",
	},
}

func init() {
	extensions[KindPortfolio] = extensions[KindPhoto]
}

// contentPrefix допустимый префикс MIME-типа для вида файла
func (k Kind) contentPrefix() string {
	if k == KindVideo {
		return "video/"
	}
	return "image/"
}

// dir каталог относительно baseDir
func (k Kind) dir() string {
	if k == KindPortfolio {
		return string(k)
	}
	return path.Join("results", string(k))
}

// Store сохраняет файлы в baseDir/<dir>/YYYY/MM/DD/<uuid><ext>
// и отдаёт ссылки вида urlPrefix + относительный путь.
type Store struct {
	baseDir   string
	urlPrefix string
	maxSize   int64
	now       func() time.Time
}

// New создаёт хранилище. maxSize - предельный размер одного файла в байтах (0 - без ограничения).
func New(baseDir, urlPrefix string, maxSize int64) *Store {
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &Store{
		baseDir:   baseDir,
		urlPrefix: urlPrefix,
		maxSize:   maxSize,
		now:       time.Now,
	}
}

// Save проверяет тип файла и сохраняет его. Возвращает публичную ссылку.
// Тип определяется по содержимому; заявленный клиентом Content-Type должен с ним не спорить.
// Расширение берётся из типа по содержимому, а не из имени файла.
func (s *Store) Save(kind Kind, fh *multipart.FileHeader) (string, error) {
	if fh.Size == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyFile, fh.Filename)
	}
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return "", fmt.Errorf("%w: %s", ErrFileTooLarge, fh.Filename)
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrStorage, fh.Filename, err)
	}
	defer file.Close()

	ext, err := s.checkContent(kind, fh, file)
	if err != nil {
		return "", err
	}

	now := s.now()
	relDir := path.Join(kind.dir(), fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day()))
	absDir := filepath.Join(s.baseDir, filepath.FromSlash(relDir))
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create directory: %v", ErrStorage, err)
	}

	filename := uuid.New().String() + ext
	absPath := filepath.Join(absDir, filename)

	if err := writeFile(absPath, file); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("%w: write file: %v", ErrStorage, err)
	}

	return s.urlPrefix + path.Join(relDir, filename), nil
}

// Remove удаляет файл по ссылке, выданной Save. Отсутствующий файл не считается ошибкой.
func (s *Store) Remove(url string) error {
	rel, ok := strings.CutPrefix(url, s.urlPrefix)
	if !ok || strings.Contains(rel, "..") {
		return fmt.Errorf("%w: foreign url %s", ErrStorage, url)
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: remove %s: %v", ErrStorage, url, err)
	}
	return nil
}

// checkContent определяет тип по содержимому и возвращает расширение для него.
// После проверки позиция чтения возвращается в начало файла.
func (s *Store) checkContent(kind Kind, fh *multipart.FileHeader, file multipart.File) (string, error) {
	if declared := declaredType(fh); declared != "" && !strings.HasPrefix(declared, kind.contentPrefix()) {
		return "", fmt.Errorf("%w: %s is declared as %s", ErrInvalidContentType, fh.Filename, declared)
	}

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ErrStorage, fh.Filename, err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%w: rewind %s: %v", ErrStorage, fh.Filename, err)
	}

	sniffed, _, _ := mime.ParseMediaType(detected.String())
	ext, ok := extensions[kind][sniffed]
	if !ok {
		return "", fmt.Errorf("%w: %s is %s", ErrInvalidContentType, fh.Filename, detected.String())
	}
	return ext, nil
}

// declaredType Content-Type части multipart без параметров.
// application/octet-stream означает, что клиент тип не знает.
func declaredType(fh *multipart.FileHeader) string {
	declared, _, err := mime.ParseMediaType(fh.Header.Get("Content-Type"))
	if err != nil || declared == "application/octet-stream" {
		return ""
	}
	return strings.ToLower(declared)
}

func writeFile(absPath string, src io.Reader) error {
	dst, err := os.Create(absPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}
