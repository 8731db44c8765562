// Package telemetry provides telemetry implementations that do not depend on
// a concrete recording backend.
package telemetry

import (
	"context"

	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/lockstep/internal/core/ports"
)

// Noop is a no-op implementation of ports.Telemetry.
type Noop struct{}

// NewNoop creates a new no-op telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a no-op vertex.
func (n *Noop) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	return ctx, NoopVertex{}
}

// Close does nothing.
func (n *Noop) Close() error { return nil }

// NoopVertex is a no-op implementation of ports.Vertex.
type NoopVertex struct{}

// Log does nothing.
func (NoopVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (NoopVertex) Complete(_ error) {}
