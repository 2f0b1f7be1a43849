package mailer

import (
	"fmt"
	"net/mail"
	"strings"
)

// ParseAddress parses a single RFC 5322 address such as
// "ops@example.com" or "Ops Team <ops@example.com>".
func ParseAddress(s string) (mail.Address, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	if err != nil {
		return mail.Address{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	return *addr, nil
}

// ParseAddresses parses every address in order and fails on the first invalid one.
func ParseAddresses(list []string) ([]mail.Address, error) {
	out := make([]mail.Address, 0, len(list))
	for _, s := range list {
		addr, err := ParseAddress(s)
		if err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	return out, nil
}

// FormatAddress renders an address for message headers and provider APIs.
// A bare address is returned as is. A display name is quoted, or RFC 2047
// encoded when it is not plain ASCII, so the result is safe in a header or a
// comma-separated recipient list.
func FormatAddress(a mail.Address) string {
	if a.Name == "" {
		return a.Address
	}
	return a.String()
}

// FormatAddresses applies FormatAddress to each address.
func FormatAddresses(list []mail.Address) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = FormatAddress(a)
	}
	return out
}
