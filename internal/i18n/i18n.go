// Package i18n resolves the Persian strings shown in chat using
// dot-separated keys. A built-in catalog keeps the bot working when the YAML
// file is absent.
package i18n

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the deployable message catalog lives.
const DefaultPath = "internal/i18n/fa.yaml"

var defaults = map[string]string{
	"menu.title":         "می‌خوای چیکار کنی؟",
	"menu.new_price":     "✅ ثبت قیمت جدید",
	"menu.daily_report":  "📊 گزارش امروز",
	"access.denied":      "⛔ فقط ادمین‌ها به ربات دسترسی دارند.",
	"prompt.buy":         "قیمت خرید مثقال رو وارد کن:",
	"prompt.sell":        "قیمت فروش مثقال رو وارد کن:",
	"input.invalid":      "❗ لطفاً فقط عدد وارد کنید.",
	"preview.ready":      "✅ پیش‌نمایش آماده‌ست. ارسال کنم؟",
	"confirm.send":       "📤 ارسال به کانال",
	"confirm.cancel":     "❌ لغو",
	"confirm.back":       "🔙 بازگشت به منوی اصلی",
	"result.sent":        "✅ قیمت ارسال شد.",
	"result.cancelled":   "❌ عملیات لغو شد.",
	"report.unavailable": "📊 گزارش امروز هنوز آماده نیست.",
}

// Catalog stores the resolved message strings.
type Catalog struct {
	messages map[string]string
}

// NewCatalog returns a catalog serving only the built-in strings.
func NewCatalog() *Catalog {
	return &Catalog{messages: map[string]string{}}
}

// Load reads a YAML catalog from path and overlays it on the built-in
// strings. A missing file is not an error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewCatalog(), nil
		}
		return nil, fmt.Errorf("i18n: read %s: %w", path, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return NewCatalog(), nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("i18n: parse %s: %w", path, err)
	}

	messages := make(map[string]string)
	flatten("", raw, messages)

	return &Catalog{messages: messages}, nil
}

// T returns the message for key, falling back to the built-in catalog and
// finally to the key itself.
func (c *Catalog) T(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	if c != nil {
		if value, ok := c.messages[key]; ok && value != "" {
			return value
		}
	}

	if value, ok := defaults[key]; ok {
		return value
	}

	return key
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			flatten(full, v, out)
		}
	}
}
