package otel

import "github.com/NetPo4ki/go-rwcell/rwcell"

// Nop is a no-op implementation of the rwcell.Observer interface.
// It serves as a placeholder for an OpenTelemetry-backed observer without
// adding dependencies.
type Nop struct{}

// NewNop returns a no-op observer.
func NewNop() *Nop { return &Nop{} }

func (*Nop) Acquired(rwcell.Mode)  {}
func (*Nop) Released(rwcell.Mode)  {}
func (*Nop) Contended(rwcell.Mode) {}
