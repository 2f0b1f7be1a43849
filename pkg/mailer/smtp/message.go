package smtp

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"
	"time"

	"github.com/dmitrymomot/alertmail/pkg/mailer"
)

// buildMessage renders p as an RFC 5322 message. Header order is fixed and the
// MIME boundary is derived from the payload ID, so output depends only on p,
// host and date.
func buildMessage(p *mailer.Payload, host string, date time.Time) []byte {
	var buf bytes.Buffer

	header := func(k, v string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", k, v)
	}

	header("From", mailer.FormatAddress(p.From()))
	header("To", strings.Join(mailer.FormatAddresses(p.To()), ", "))
	header("Subject", mime.QEncoding.Encode("utf-8", p.Subject()))
	header("Date", date.Format(time.RFC1123Z))
	header("Message-ID", fmt.Sprintf("<%s@%s>", p.ID(), host))
	if p.Tag() != "" {
		header("X-Tag", mime.QEncoding.Encode("utf-8", p.Tag()))
	}
	header("MIME-Version", "1.0")

	mw := multipart.NewWriter(&buf)
	// Boundary chars are restricted; the hyphenated UUID is within the allowed set.
	_ = mw.SetBoundary("alertmail-" + p.ID())
	header("Content-Type", "multipart/alternative; boundary="+mw.Boundary())
	buf.WriteString("\r\n")

	writePart(mw, "text/plain", p.Text())
	writePart(mw, "text/html", p.HTML())
	_ = mw.Close()

	return buf.Bytes()
}

func writePart(mw *multipart.Writer, contentType, body string) {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType+"; charset=\"UTF-8\"")
	h.Set("Content-Transfer-Encoding", "quoted-printable")

	w, err := mw.CreatePart(h)
	if err != nil {
		return
	}
	qw := quotedprintable.NewWriter(w)
	_, _ = qw.Write([]byte(body))
	_ = qw.Close()
}
