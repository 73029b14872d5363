package mail

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Composer turns a campaign template and one recipient row into a send-ready
// Email. With no attachment it produces a structured email (subject plus the
// branded HTML body). With an attachment it additionally builds the complete
// raw MIME message, since structured provider calls cannot carry files.
type Composer struct {
	from       string
	fromName   string
	attachment *Attachment
}

// NewComposer creates a composer sending from the given verified address.
// attachment may be nil.
func NewComposer(from, fromName string, attachment *Attachment) *Composer {
	return &Composer{
		from:       from,
		fromName:   fromName,
		attachment: attachment,
	}
}

// From returns the sender in RFC 5322 form.
func (c *Composer) From() string {
	if c.fromName == "" {
		return c.from
	}
	return fmt.Sprintf("%s <%s>", c.fromName, c.from)
}

// Compose renders the template against the row and builds the email for the
// row's destination address. The row and template are never modified.
func (c *Composer) Compose(subject, body string, row Recipient) (*Email, error) {
	if row.Address() == "" {
		return nil, errors.New("recipient row has no destination address")
	}

	rendered := Render(body, row)
	email := &Email{
		To:         row.Address(),
		Subject:    subject,
		HTML:       WrapHTML(subject, rendered),
		Text:       rendered,
		Attachment: c.attachment,
	}
	if c.attachment != nil {
		email.Raw = BuildRawMessage(c.From(), email)
	}
	return email, nil
}

// LoadAttachment reads a campaign attachment from disk. Called once per
// pipeline invocation, not per batch.
func LoadAttachment(path string) (*Attachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read attachment %s", path)
	}
	return &Attachment{
		Filename: filepath.Base(path),
		Content:  content,
	}, nil
}

// BuildRawMessage assembles an RFC 2822 message: a multipart/mixed envelope
// holding a multipart/alternative section (plain text and HTML renderings of
// the same body) followed by the base64-encoded attachment. Both boundaries
// are random tokens that cannot occur in the content.
func BuildRawMessage(from string, email *Email) []byte {
	mixed := "mixed-" + uuid.NewString()
	alt := "alt-" + uuid.NewString()

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", email.To))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=\"%s\"\r\n\r\n", mixed))

	msg.WriteString(fmt.Sprintf("--%s\r\n", mixed))
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", alt))

	msg.WriteString(fmt.Sprintf("--%s\r\n", alt))
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(email.Text)
	msg.WriteString("\r\n\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", alt))
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	msg.WriteString(email.HTML)
	msg.WriteString("\r\n\r\n")
	msg.WriteString(fmt.Sprintf("--%s--\r\n", alt))

	if att := email.Attachment; att != nil {
		msg.WriteString(fmt.Sprintf("--%s\r\n", mixed))
		msg.WriteString(fmt.Sprintf("Content-Type: application/octet-stream; name=\"%s\"\r\n", att.Filename))
		msg.WriteString("Content-Transfer-Encoding: base64\r\n")
		msg.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=\"%s\"\r\n\r\n", att.Filename))
		msg.WriteString(wrapBase64(base64.StdEncoding.EncodeToString(att.Content)))
		msg.WriteString("\r\n")
	}
	msg.WriteString(fmt.Sprintf("--%s--\r\n", mixed))

	return []byte(msg.String())
}

// wrapBase64 folds encoded content to 76-character lines per RFC 2045.
func wrapBase64(s string) string {
	const lineLen = 76
	var b strings.Builder
	for len(s) > lineLen {
		b.WriteString(s[:lineLen])
		b.WriteString("\r\n")
		s = s[lineLen:]
	}
	b.WriteString(s)
	return b.String()
}
