package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
)

const testRecipient = "hello@shell.rivieraapps.com"

func sampleSummary(t *testing.T) *OrderSummary {
	t.Helper()
	cat, composer, clk := buildFixtures(t)
	wallet, _ := cat.ProductByID("wallet")
	belt, _ := cat.ProductByID("belt")

	cart := domain.NewCart("s", clk.Now(), clk)
	require.NoError(t, cart.AddItem(wallet, "brown", 2, ""))
	require.NoError(t, cart.AddItem(belt, "black", 1, ""))

	customer := testCustomer()
	customer.SpecialInstructions = "Gift wrap please"

	summary, err := composer.BuildSummary(cart, customer, duringSale)
	require.NoError(t, err)
	return summary
}

func TestEmailSubject(t *testing.T) {
	summary := sampleSummary(t)
	assert.Equal(t, "New Order from Shell Leather - €231.00", EmailSubject(summary))
}

func TestEmailBody(t *testing.T) {
	body := EmailBody(sampleSummary(t))

	assert.True(t, strings.HasPrefix(body, "New order received!\n\n"))
	assert.Contains(t, body, "Customer Information:\n- Name: Marie Dupont\n")
	assert.Contains(t, body, "- Address: 12 Rue des Oliviers, Nice, 06000, France\n")
	assert.Contains(t, body, "- Bifold Wallet (brown) x2 - €68.00 each = €136.00 (20% OFF applied)\n")
	assert.Contains(t, body, "- Classic Belt (black) x1 - €95.00 each = €95.00\n")
	assert.Contains(t, body, "\nTotal: €231.00\n")
	assert.Contains(t, body, "Special Instructions:\nGift wrap please\n")
	assert.Contains(t, body, "Order placed on: 15 Jul 2026 12:00 UTC")
}

func TestEmailBody_NoSpecialInstructions(t *testing.T) {
	summary := sampleSummary(t)
	summary.Customer.SpecialInstructions = ""

	assert.NotContains(t, EmailBody(summary), "Special Instructions")
}

func TestMailtoLink(t *testing.T) {
	summary := sampleSummary(t)
	link := MailtoLink(summary, testRecipient)

	require.True(t, strings.HasPrefix(link, "mailto:"+testRecipient+"?subject="))

	// Spaces are encoded as %20, never '+'.
	assert.NotContains(t, link, "+")

	// Both components round-trip through URL decoding.
	query := link[strings.Index(link, "?")+1:]
	values, err := url.ParseQuery(strings.ReplaceAll(query, "%20", "+"))
	require.NoError(t, err)
	assert.Equal(t, EmailSubject(summary), values.Get("subject"))
	assert.Equal(t, EmailBody(summary), values.Get("body"))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "20", formatPercent(20))
	assert.Equal(t, "12.5", formatPercent(12.5))
}
