// Package export turns an allocation result into something people can read:
// a console table, a plain-text message with share links, or a PDF.
package export

import (
	"fmt"
	"net/url"
	"strings"
	"team-draft/domain"
)

// NameFilter rewrites a participant name before it is shown, e.g. to mask forbidden words.
type NameFilter func(name string) string

func (f NameFilter) apply(name string) string {
	if f == nil {
		return name
	}
	return f(name)
}

// ShareText renders the plain-text summary sent through messaging apps:
// balance figures first, then every group with its members.
func ShareText(result domain.AllocationResult, filter NameFilter) string {
	var b strings.Builder
	b.WriteString("🏆 GROUPS DRAWN 🏆\n\n")
	fmt.Fprintf(&b, "Balance: average %.1f | difference %.1f\n\n",
		result.Stats.Average, float64(result.Stats.Difference))

	for _, group := range result.Groups {
		fmt.Fprintf(&b, "👥 GROUP %d (score: %d) 👥\n", group.Number(), group.Score())
		for _, p := range group.Members {
			fmt.Fprintf(&b, "• %s (%d) - %s\n", filter.apply(p.Name), p.Score, p.Category)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WhatsAppLink builds a wa.me link that opens a chat prefilled with text.
func WhatsAppLink(text string) string {
	return "https://wa.me/?text=" + encodeComponent(text)
}

// MailtoLink builds a mailto link with subject and body and no recipient.
func MailtoLink(subject, body string) string {
	return "mailto:?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

// encodeComponent escapes like a URI component: spaces become %20, not '+'.
// QueryEscape already turns literal '+' into %2B, so the replacement is unambiguous.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
