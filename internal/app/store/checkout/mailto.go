package checkout

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// MailtoLink renders the order summary as a pre-filled email composition
// link. Opening the link in a mail client is the transmission mechanism:
// this core performs no network calls and receives no delivery confirmation.
func MailtoLink(summary *OrderSummary, recipient string) string {
	subject := EmailSubject(summary)
	body := EmailBody(summary)
	return "mailto:" + recipient +
		"?subject=" + escapeMailtoComponent(subject) +
		"&body=" + escapeMailtoComponent(body)
}

// EmailSubject renders the order email subject line.
func EmailSubject(summary *OrderSummary) string {
	return fmt.Sprintf("New Order from Shell Leather - €%s", summary.Total.String())
}

// EmailBody renders the human-readable order email body.
func EmailBody(summary *OrderSummary) string {
	var b strings.Builder

	b.WriteString("New order received!\n\n")

	b.WriteString("Customer Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", summary.Customer.FullName)
	fmt.Fprintf(&b, "- Email: %s\n", summary.Customer.Email)
	fmt.Fprintf(&b, "- Phone: %s\n", summary.Customer.Phone)
	fmt.Fprintf(&b, "- Address: %s, %s, %s, %s\n",
		summary.Customer.Address,
		summary.Customer.City,
		summary.Customer.PostalCode,
		summary.Customer.Country,
	)

	b.WriteString("\nOrder Details:\n")
	for _, line := range summary.Lines {
		fmt.Fprintf(&b, "- %s (%s) x%d - €%s each = €%s",
			line.ProductName,
			line.Color,
			line.Quantity,
			line.UnitPrice.String(),
			line.LineTotal.String(),
		)
		if line.Discounted {
			fmt.Fprintf(&b, " (%s%% OFF applied)", formatPercent(line.DiscountPercent))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nTotal: €%s\n", summary.Total.String())

	if summary.Customer.SpecialInstructions != "" {
		fmt.Fprintf(&b, "\nSpecial Instructions:\n%s\n", summary.Customer.SpecialInstructions)
	}

	fmt.Fprintf(&b, "\nOrder placed on: %s", summary.PlacedAt.Format("2 Jan 2006 15:04 MST"))

	return b.String()
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// escapeMailtoComponent percent-encodes a header value for a mailto URL.
// Mail clients handle %20 more reliably than '+' for spaces.
func escapeMailtoComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
