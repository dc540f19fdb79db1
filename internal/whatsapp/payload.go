package whatsapp

// Payload is the webhook notification body sent by the WhatsApp Cloud
// API. Only the fields needed to extract incoming text messages are
// mapped; status updates and other events carry no messages and are
// ignored.
type Payload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

type Value struct {
	MessagingProduct string    `json:"messaging_product"`
	Messages         []Message `json:"messages"`
}

type Message struct {
	From string `json:"from"`
	ID   string `json:"id"`
	Type string `json:"type"`
	Text *Text  `json:"text"`
}

type Text struct {
	Body string `json:"body"`
}

// FirstTextMessage returns the sender and body of the first text message
// in the payload, if any.
func (p *Payload) FirstTextMessage() (from, body string, ok bool) {
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Type == "text" && msg.Text != nil {
					return msg.From, msg.Text.Body, true
				}
			}
		}
	}
	return "", "", false
}
