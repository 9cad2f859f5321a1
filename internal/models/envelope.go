package models

// ReportEnvelope - готовое к отправке письмо для почтового транспорта
type ReportEnvelope struct {
	From        string       `json:"from"`
	To          string       `json:"to"`
	Subject     string       `json:"subject"`
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment - вложение письма, содержимое в base64 без data-URL префикса
type Attachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
