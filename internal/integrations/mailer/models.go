package mailer

// Message текстовое письмо
type Message struct {
	To      string
	Subject string
	Body    string
}
