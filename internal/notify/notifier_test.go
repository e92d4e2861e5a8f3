package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSink struct {
	got []Notification
}

func (r *recordingSink) Deliver(n Notification) { r.got = append(r.got, n) }

func TestNotifier_RemovesAfterDelay(t *testing.T) {
	defer goleak.VerifyNone(t)

	n := New(20 * time.Millisecond)
	n.Success("Paciente registrado exitosamente")

	active := n.Active()
	require.Len(t, active, 1)
	assert.Equal(t, SeveritySuccess, active[0].Severity)

	require.Eventually(t, func() bool { return len(n.Active()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestNotifier_Stacks(t *testing.T) {
	n := New(time.Hour)
	n.Success("uno")
	n.Error("dos")
	n.Info("tres")

	active := n.Active()
	require.Len(t, active, 3)
	assert.Equal(t, []string{"uno", "dos", "tres"}, []string{active[0].Message, active[1].Message, active[2].Message})
}

func TestNotifier_UnknownSeverityIsInfo(t *testing.T) {
	n := New(time.Hour)
	note := n.Notify("hola", Severity("warning"))
	assert.Equal(t, SeverityInfo, note.Severity)
}

func TestNotifier_DefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultDelay, New(0).delay)
}

func TestNotifier_Sinks(t *testing.T) {
	rec := &recordingSink{}
	core, logs := observer.New(zap.InfoLevel)
	var out bytes.Buffer

	n := New(time.Hour, rec, ZapSink{Logger: zap.New(core)}, TerminalSink{Out: &out})
	n.Error("No se pudo enviar el mensaje")

	require.Len(t, rec.got, 1)
	assert.Equal(t, 1, logs.FilterMessage("notification").Len())
	assert.Equal(t, zap.WarnLevel, logs.All()[0].Level)
	assert.Contains(t, out.String(), "No se pudo enviar el mensaje")
}
