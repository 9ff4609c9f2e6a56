// Package announce renders the localized channel announcement for a buy/sell
// price pair.
package announce

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zargram/pricebot/internal/pricing"
)

// Composer renders announcement messages. It is deterministic given its
// clock: the same prices at the same instant always produce the same text.
type Composer struct {
	loc     *time.Location
	channel string
	contact string
	printer *message.Printer
	now     func() time.Time
}

// Option customizes a Composer.
type Option func(*Composer)

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) {
		c.now = now
	}
}

// NewComposer creates a Composer announcing to the given channel identifier,
// resolving dates in loc.
func NewComposer(loc *time.Location, channel, contact string, opts ...Option) *Composer {
	c := &Composer{
		loc:     loc,
		channel: channel,
		contact: contact,
		printer: message.NewPrinter(language.English),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compose renders the announcement for a per-mesghal buy/sell price pair.
func (c *Composer) Compose(buyPrice, sellPrice int64) string {
	weekday, date := jalaliHeader(c.now().In(c.loc))

	buyGram := pricing.PerGram(buyPrice)
	sellGram := pricing.PerGram(sellPrice)

	var b strings.Builder
	b.WriteString("📅 " + weekday + " " + date + "\n")
	b.WriteString("💰 آبشده نقدی ⬇️\n")
	b.WriteString("◀️ هر مثقال:\n")
	b.WriteString(c.printer.Sprintf("🟢 فروش ما به شما : %d\n", sellPrice))
	b.WriteString(c.printer.Sprintf("🔴 خرید ما از شما : %d\n", buyPrice))
	b.WriteString("\n")
	b.WriteString("◀️ هر گرم:\n")
	b.WriteString(c.printer.Sprintf("🟢 فروش ما به شما : %d\n", sellGram))
	b.WriteString(c.printer.Sprintf("🔴 خرید ما از شما : %d\n", buyGram))
	if c.contact != "" {
		b.WriteString("\n")
		b.WriteString("📞 جهت انجام معاملات لطفا تماس بگیرید:\n")
		b.WriteString(c.contact + "\n")
	}
	b.WriteString("📢 " + c.channel + "\n")

	return b.String()
}

// Now returns the current time in the composer's location, used for journal
// timestamps so the log and the announcement agree on the calendar day.
func (c *Composer) Now() time.Time {
	return c.now().In(c.loc)
}
