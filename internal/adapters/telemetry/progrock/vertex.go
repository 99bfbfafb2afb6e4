package progrock

import (
	"fmt"

	"github.com/vito/progrock"
	"go.trai.ch/pin/internal/core/ports"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// RecordError records an error for the span.
func (s *Span) RecordError(err error) {
	s.err = err
}

// SetAttribute renders the key-value pair into the vertex output stream.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// End completes the vertex, carrying any recorded error.
func (s *Span) End() {
	s.vertex.Done(s.err)
}

var _ ports.Span = (*Span)(nil)
