package clock

import (
	"time"

	"github.com/BruksfildServices01/doca-panel/internal/timezone"
)

// Clock abstrai o "agora" para os motores de SLA.
// Toda avaliação de prazo recebe o relógio injetado — nunca time.Now()
// direto dentro do domínio.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Instantes persistidos são sempre UTC; o fuso do galpão só entra na
// hora de interpretar entrada do operador e janela do dia.
func (systemClock) Now() time.Time {
	return timezone.Now().UTC()
}

func System() Clock {
	return systemClock{}
}

// Fixed é o relógio determinístico dos testes.
type Fixed struct {
	instant time.Time
}

func FixedAt(t time.Time) *Fixed {
	return &Fixed{instant: t.UTC()}
}

func (f *Fixed) Now() time.Time {
	return f.instant
}

func (f *Fixed) Advance(d time.Duration) {
	f.instant = f.instant.Add(d)
}

func (f *Fixed) Set(t time.Time) {
	f.instant = t.UTC()
}
