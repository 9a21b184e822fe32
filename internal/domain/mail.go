package domain

type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// MailMessage is the payload published to the notification queue. One message
// carries at most one batch of recipients (the publisher does the chunking).
type MailMessage struct {
	Recipients []Recipient `json:"recipients"`
	Subject    string      `json:"subject"`
	Body       string      `json:"body"`
}
