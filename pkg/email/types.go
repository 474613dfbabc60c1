package email

// Message is one outgoing email. At least one of TextBody and HTMLBody must
// be set; when both are, the HTML part is sent as an alternative.
type Message struct {
	To      []string
	CC      []string
	BCC     []string
	ReplyTo string
	Subject string

	TextBody string
	HTMLBody string

	// Headers are set verbatim after the standard ones.
	Headers map[string]string
}
