// Package notify composes the standings message sent to the group after a
// session. It only builds text and a mailto: link; delivery is left to the
// user's mail client.
package notify

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lox/sheepshead/internal/game"
)

const signOff = "Sent from Shorewood Sheepshead Scorer"

// DateLayout matches the short US date used in the subject line
const DateLayout = "1/2/2006"

var ErrNoRecipient = errors.New("no recipient")

// Subject returns the message subject for a given day
func Subject(date time.Time) string {
	return "Sheepshead Scores - " + date.Format(DateLayout)
}

// Signed formats an amount as +$1.25 or -$1.25. Zero is positive.
func Signed(v decimal.Decimal) string {
	sign := "+"
	if v.IsNegative() {
		sign = "-"
	}
	return sign + "$" + v.Abs().StringFixed(2)
}

// Summary renders the standings in seat order, followed by the pot when one
// is carried.
func Summary(players []game.Player, pot game.Pot) string {
	var b strings.Builder
	b.WriteString("Current Standings:\n\n")
	for _, p := range players {
		fmt.Fprintf(&b, "%s: %s\n", p.Name, Signed(p.Balance))
	}
	if !pot.Empty() {
		fmt.Fprintf(&b, "\nActive Pots: %d ($%s)", pot.Len(), pot.Total().StringFixed(2))
	}
	b.WriteString("\n\n" + signOff)
	return b.String()
}

// MailtoURL builds a mailto: link with a percent-encoded subject and body
func MailtoURL(recipient, subject, body string) (string, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return "", ErrNoRecipient
	}
	addr, err := mail.ParseAddress(recipient)
	if err != nil {
		return "", fmt.Errorf("recipient %q: %w", recipient, err)
	}
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", addr.Address, escape(subject), escape(body)), nil
}

// escape encodes spaces as %20; mail clients show a literal + otherwise
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
