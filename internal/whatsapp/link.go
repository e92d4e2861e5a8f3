package whatsapp

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/optic-manager/internal/validators"
)

const baseURL = "https://wa.me/"

// LinkOpener hands a deep link to whatever can open it (the browser
// tab, a terminal, a log). The shop completes the send by hand.
type LinkOpener interface {
	Open(ctx context.Context, link string) error
}

// BuildLink returns the wa.me link for phone with text prefilled. ok is
// false when phone carries no digits.
func BuildLink(phone, text string) (string, bool) {
	digits := validators.Digits(phone)
	if digits == "" {
		return "", false
	}
	return baseURL + digits + "?text=" + encodeURIComponent(text), true
}

// componentUnescapes restores what the browser's encodeURIComponent
// leaves alone but url.QueryEscape escapes.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}

// LogOpener records links instead of opening them. The HTTP API returns
// the link to the browser, which opens it.
type LogOpener struct {
	Logger *zap.Logger
}

func (o LogOpener) Open(_ context.Context, link string) error {
	if o.Logger != nil {
		o.Logger.Info("whatsapp link ready", zap.String("link", link))
	}
	return nil
}
