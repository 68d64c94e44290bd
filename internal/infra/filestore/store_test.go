package filestore

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader собирает multipart-запрос и возвращает заголовок единственного файла
func fileHeader(t *testing.T, field, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+name+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n0000000000000000")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00jpeg-bytes")
	mp4Header  = []byte("\x00\x00\x00\x18ftypisom\x00\x00\x02\x00isomiso2")
)

func newStore(t *testing.T) (*Store, string) {
	dir := t.TempDir()
	s := New(dir, "/media", 1<<20)
	s.now = func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) }
	return s, dir
}

func TestStore_SavePhoto(t *testing.T) {
	s, dir := newStore(t)

	url, err := s.Save(KindPhoto, fileHeader(t, "photos", "IMG_01.JPG", "image/jpeg", jpegHeader))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/media/results/photos/2025/03/14/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	rel := strings.TrimPrefix(url, "/media/")
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, jpegHeader, data)

	require.NoError(t, s.Remove(url))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_RejectsWrongKind(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Save(KindVideo, fileHeader(t, "videos", "clip.png", "image/png", pngHeader))
	assert.ErrorIs(t, err, ErrInvalidContentType)

	_, err = s.Save(KindPhoto, fileHeader(t, "photos", "notes.txt", "text/plain", []byte("hello")))
	assert.ErrorIs(t, err, ErrInvalidContentType)
}

func TestStore_SniffsWhenContentTypeMissing(t *testing.T) {
	s, _ := newStore(t)

	url, err := s.Save(KindPhoto, fileHeader(t, "photos", "scan.png", "", pngHeader))
	require.NoError(t, err)
	assert.Contains(t, url, "/results/photos/")
}

func TestStore_Limits(t *testing.T) {
	s, _ := newStore(t)
	s.maxSize = 4

	_, err := s.Save(KindPhoto, fileHeader(t, "photos", "big.jpg", "image/jpeg", jpegHeader))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = s.Save(KindPhoto, fileHeader(t, "photos", "empty.jpg", "image/jpeg", nil))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestStore_RemoveForeignURL(t *testing.T) {
	s, _ := newStore(t)
	assert.ErrorIs(t, s.Remove("https://cdn.example.com/a.jpg"), ErrStorage)
	assert.ErrorIs(t, s.Remove("/media/../etc/passwd"), ErrStorage)
}

func TestStore_RejectsMarkupDisguisedAsImage(t *testing.T) {
	s, dir := newStore(t)

	page := []byte("<html><body><script>alert(document.cookie)</script></body></html>")
	_, err := s.Save(KindPhoto, fileHeader(t, "photos", "evil.html", "image/png", page))
	assert.ErrorIs(t, err, ErrInvalidContentType)

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
	_, err = s.Save(KindPortfolio, fileHeader(t, "image", "logo.svg", "image/svg+xml", svg))
	assert.ErrorIs(t, err, ErrInvalidContentType)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_ExtensionFollowsContent(t *testing.T) {
	s, _ := newStore(t)

	url, err := s.Save(KindPhoto, fileHeader(t, "photos", "evil.html", "image/png", pngHeader))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"))

	url, err = s.Save(KindVideo, fileHeader(t, "videos", "clip", "", mp4Header))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/media/results/videos/2025/03/14/"))
	assert.True(t, strings.HasSuffix(url, ".mp4"))

	url, err = s.Save(KindPortfolio, fileHeader(t, "image", "work.jpeg", "image/jpeg", jpegHeader))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/media/portfolio/2025/03/14/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestStore_DeclaredTypeMustMatchKind(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Save(KindPhoto, fileHeader(t, "photos", "scan.png", "text/html", pngHeader))
	assert.ErrorIs(t, err, ErrInvalidContentType)
}

func TestWriteFile_Errors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, writeFile(filepath.Join(dir, "missing", "a.jpg"), bytes.NewReader(jpegHeader)))

	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full is not available")
	}
	assert.Error(t, writeFile("/dev/full", bytes.NewReader(bytes.Repeat(jpegHeader, 1<<12))))
}
