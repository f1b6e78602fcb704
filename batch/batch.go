// Package batch implements the batch codec: a caller-chosen opaque prefix
// followed by zero or more tuples separated by the SEP tag (spec §4.7).
package batch

import (
	"bytes"

	"github.com/ordtup/ordtup/element"
	"github.com/ordtup/ordtup/internal/options"
	"github.com/ordtup/ordtup/tuple"
	"github.com/ordtup/ordtup/wire"
)

// config holds encode-time tuning knobs. There is no wire-visible effect;
// options here only affect the writer's initial allocation.
type config struct {
	initialCapacity int
}

// Option configures Pack.
type Option = options.Option[*config]

// WithInitialCapacity pre-sizes the writer's buffer, avoiding reallocation
// when the caller has a good estimate of the encoded size.
func WithInitialCapacity(n int) Option {
	return options.NoError[*config](func(c *config) { c.initialCapacity = n })
}

// Pack writes prefix followed by the tuples in order, separated (not
// terminated) by SEP. A single tuple is written with no SEP at all.
func Pack(prefix []byte, tuples []tuple.Tuple, opts ...Option) ([]byte, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	var w *wire.Writer
	if cfg.initialCapacity > 0 {
		w = wire.NewWriterSize(cfg.initialCapacity)
	} else {
		w = wire.NewWriter()
	}

	w.Write(prefix)

	for i, t := range tuples {
		if i > 0 {
			w.WriteByte(byte(element.KindSep))
		}

		if err := tuple.Encode(w, t); err != nil {
			return nil, err
		}
	}

	return w.Finalize(), nil
}

// Unpack checks input against prefix. If input does not begin with prefix,
// matched is false and no parse is attempted (spec's NoMatch signal — not an
// error). Otherwise it decodes every tuple following the prefix.
func Unpack(prefix, input []byte) (tuples []tuple.Tuple, matched bool, err error) {
	if !bytes.HasPrefix(input, prefix) {
		return nil, false, nil
	}

	r := wire.NewReader(input[len(prefix):])

	for !r.Done() {
		t, _, err := tuple.Decode(r)
		if err != nil {
			return nil, true, err
		}

		tuples = append(tuples, t)
	}

	return tuples, true, nil
}
