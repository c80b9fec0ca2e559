package device

import (
	"context"
	"github.com/google/uuid"
	"github.com/shimmeringbee/logwrap"
)

const ProxyType = "ProxyDevice"

var _ Switchable = (*Proxy)(nil)

// Proxy logs every operation before forwarding it to the real device. Forwarded calls are never suppressed or
// retried.
type Proxy struct {
	real   Switchable
	logger logwrap.Logger
}

func NewProxy(real Switchable, l logwrap.Logger) *Proxy {
	return &Proxy{real: real, logger: l}
}

func (p *Proxy) Identifier() uuid.UUID {
	return p.real.Identifier()
}

func (p *Proxy) Type() string {
	return ProxyType
}

func (p *Proxy) Unwrap() Switchable {
	return p.real
}

func (p *Proxy) TurnOn(ctx context.Context) error {
	p.logger.LogInfo(ctx, "Proxy turning ON.", logwrap.Datum("device", p.real.Type()), logwrap.Datum("operation", "TurnOn"))
	return p.real.TurnOn(ctx)
}

func (p *Proxy) TurnOff(ctx context.Context) error {
	p.logger.LogInfo(ctx, "Proxy turning OFF.", logwrap.Datum("device", p.real.Type()), logwrap.Datum("operation", "TurnOff"))
	return p.real.TurnOff(ctx)
}
