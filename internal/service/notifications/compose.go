package notifications

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

const (
	defaultGreetingName = "Шановний клієнте"
	defaultSenderName   = "фотостудії"
	mediaPrefix         = "/media/"
)

// ResultsEmail письмо с результатами фотосессии
type ResultsEmail struct {
	To      string
	Subject string
	Body    string
}

// ComposeResults собирает письмо со ссылками на все загруженные фото и видео
func ComposeResults(b *domain.Booking, senderName, recipient, baseURL string) ResultsEmail {
	if senderName == "" {
		senderName = defaultSenderName
	}

	greeting := defaultGreetingName
	if b.Guest != nil && b.Guest.FirstName != "" {
		greeting = b.Guest.FirstName
	}

	lines := []string{
		fmt.Sprintf("Вітаємо, %s!", greeting),
		"",
		fmt.Sprintf("Ваша фотосесія від %s завершена.", b.Date.Format(domain.DateFormat)),
		"",
		"Результати роботи:",
	}

	if len(b.ResultPhotos) > 0 {
		lines = append(lines, fmt.Sprintf("\nФото (%d файлів):", len(b.ResultPhotos)))
		lines = append(lines, numbered(b.ResultPhotos, baseURL)...)
	}
	if len(b.ResultVideos) > 0 {
		lines = append(lines, fmt.Sprintf("\nВідео (%d файлів):", len(b.ResultVideos)))
		lines = append(lines, numbered(b.ResultVideos, baseURL)...)
	}

	lines = append(lines,
		"",
		"Дякуємо за вибір нашої студії!",
		"",
		"З повагою,",
		"Команда фотостудії",
	)

	return ResultsEmail{
		To:      recipient,
		Subject: fmt.Sprintf("Результати фотосесії від %s", senderName),
		Body:    strings.Join(lines, "\n"),
	}
}

func numbered(urls []string, baseURL string) []string {
	out := make([]string, 0, len(urls))
	for i, u := range urls {
		out = append(out, fmt.Sprintf("%d. %s", i+1, absoluteURL(u, baseURL)))
	}
	return out
}

// absoluteURL превращает путь файла в ссылку, которую можно открыть из письма
func absoluteURL(u, baseURL string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	switch {
	case strings.HasPrefix(u, "http://"), strings.HasPrefix(u, "https://"):
		return u
	case strings.HasPrefix(u, mediaPrefix):
		return baseURL + u
	default:
		return baseURL + mediaPrefix + strings.TrimLeft(u, "/")
	}
}
