package mail

// Recipient is one parsed CSV row: element 0 is the destination address,
// elements 1..n are positional substitution values for the body template.
type Recipient []string

// Address returns the destination address of the row.
func (r Recipient) Address() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

// Attachment is a file attached to every email of a campaign.
type Attachment struct {
	Filename string
	Content  []byte
}

// Email is the fully rendered artifact for a single recipient, ready to hand
// to a provider adapter. Raw is populated only in attachment mode and holds
// the complete RFC 2822 message for providers that accept raw MIME.
type Email struct {
	To         string
	Subject    string
	HTML       string
	Text       string
	Attachment *Attachment
	Raw        []byte
}

// Outcome is the per-recipient result of a dispatch. A zero Error means the
// provider accepted the send.
type Outcome struct {
	To    string `json:"to"`
	Error string `json:"error,omitempty"`
}

// OK reports whether the send was accepted.
func (o Outcome) OK() bool { return o.Error == "" }

// Report aggregates outcomes across all batches of one campaign.
type Report struct {
	Total    int       `json:"total"`
	Sent     int       `json:"sent"`
	Failed   int       `json:"failed"`
	Failures []Outcome `json:"failures,omitempty"`
}
