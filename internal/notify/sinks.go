package notify

import (
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

type ZapSink struct {
	Logger *zap.Logger
}

func (s ZapSink) Deliver(n Notification) {
	fields := []zap.Field{zap.String("severity", string(n.Severity)), zap.String("message", n.Message)}
	if n.Severity == SeverityError {
		s.Logger.Warn("notification", fields...)
		return
	}
	s.Logger.Info("notification", fields...)
}

// TerminalSink prints notifications for the CLI, colored by severity.
type TerminalSink struct {
	Out io.Writer
}

func (s TerminalSink) Deliver(n Notification) {
	var c *color.Color
	switch n.Severity {
	case SeveritySuccess:
		c = color.New(color.FgGreen)
	case SeverityError:
		c = color.New(color.FgRed, color.Bold)
	default:
		c = color.New(color.FgBlue)
	}
	_, _ = c.Fprintln(s.Out, n.Message)
}
