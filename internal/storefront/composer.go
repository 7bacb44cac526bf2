package storefront

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	defaultCurrencySymbol = "₦"
	defaultSignature      = "Sent via WhatsOrder"
	separator             = "----------------"
	notProvided           = "N/A"
)

// Customer is the contact captured at checkout.
type Customer struct {
	Name  string
	Phone string
	Note  string // Delivery address or instructions
}

// Composer renders order text for WhatsApp.
type Composer struct {
	currency  string
	signature string
	printer   *message.Printer
}

type Option func(*Composer)

// WithCurrencySymbol sets the symbol prefixed to every amount.
func WithCurrencySymbol(symbol string) Option {
	return func(c *Composer) {
		if symbol != "" {
			c.currency = symbol
		}
	}
}

// WithSignature sets the italic footer line.
func WithSignature(signature string) Option {
	return func(c *Composer) {
		if signature != "" {
			c.signature = signature
		}
	}
}

func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		currency:  defaultCurrencySymbol,
		signature: defaultSignature,
		printer:   message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FormatAmount renders an amount with the currency symbol, thousands
// separators and at most two fraction digits, e.g. ₦2,500 or ₦1,250.5.
func (c *Composer) FormatAmount(amount decimal.Decimal) string {
	value := amount.Round(2).InexactFloat64()

	return c.currency + c.printer.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(2)))
}

// ItemLines renders one bullet per line: "• 2x Jollof Rice — ₦3,000".
func (c *Composer) ItemLines(lines []Line) string {
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, "• "+strconv.Itoa(line.Quantity)+"x "+line.Product.Name+" — "+c.FormatAmount(line.Subtotal))
	}

	return strings.Join(rendered, "\n")
}

// ItemsSummary is the order log text: the item lines followed by a total line.
func (c *Composer) ItemsSummary(lines []Line, total decimal.Decimal) string {
	return c.ItemLines(lines) + "\nTotal: " + c.FormatAmount(total)
}

// Message renders the full WhatsApp order text.
func (c *Composer) Message(businessName string, customer Customer, lines []Line, total decimal.Decimal) string {
	note := orNotProvided(customer.Note)

	var b strings.Builder
	b.WriteString("*New Order for " + businessName + "*\n")
	b.WriteString("Customer: " + orNotProvided(customer.Name) + " (" + orNotProvided(customer.Phone) + ")\n")
	b.WriteString("Address: " + note + "\n")
	b.WriteString(separator + "\n")
	b.WriteString(c.ItemLines(lines) + "\n")
	b.WriteString(separator + "\n")
	b.WriteString("*Total Amount: " + c.FormatAmount(total) + "*\n")
	b.WriteString("\n*Delivery Details:*\n")
	b.WriteString(note + "\n")
	b.WriteString("\n_" + c.signature + "_")

	return b.String()
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return notProvided
	}

	return strings.TrimSpace(s)
}
