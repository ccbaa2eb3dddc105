// Package metrics exposes decode/encode call counters and latencies as
// Prometheus instruments, replacing the hand-rolled counters the teacher
// repository kept in internal/common with an ecosystem library serving
// the same role.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Codec is a nil-safe bundle of the instruments the codec package
// increments around a decode or encode call. A nil *Codec is valid and
// every method on it is a no-op, so the pure codec.Decode/codec.Encode
// functions never need to know whether observability is wired in.
type Codec struct {
	decodedBlocks prometheus.Counter
	decodeErrors  prometheus.Counter
	decodeLatency prometheus.Histogram

	encodedBlocks prometheus.Counter
	encodeErrors  prometheus.Counter
	encodeLatency prometheus.Histogram
}

// New builds a Codec and registers its instruments with reg.
func New(reg prometheus.Registerer) *Codec {
	c := &Codec{
		decodedBlocks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "asterix_decoded_blocks_total",
			Help: "Data Blocks successfully decoded.",
		}),
		decodeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "asterix_decode_errors_total",
			Help: "Data Block decode attempts that failed.",
		}),
		decodeLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "asterix_decode_seconds",
			Help: "Time spent decoding one Data Block.",
		}),
		encodedBlocks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "asterix_encoded_blocks_total",
			Help: "Data Blocks successfully encoded.",
		}),
		encodeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "asterix_encode_errors_total",
			Help: "Data Block encode attempts that failed.",
		}),
		encodeLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "asterix_encode_seconds",
			Help: "Time spent encoding one Data Block.",
		}),
	}
	reg.MustRegister(
		c.decodedBlocks, c.decodeErrors, c.decodeLatency,
		c.encodedBlocks, c.encodeErrors, c.encodeLatency,
	)
	return c
}

// ObserveDecode records one decode call's outcome and duration.
func (c *Codec) ObserveDecode(start time.Time, err error) {
	if c == nil {
		return
	}
	c.decodeLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		c.decodeErrors.Inc()
		return
	}
	c.decodedBlocks.Inc()
}

// ObserveEncode records one encode call's outcome and duration.
func (c *Codec) ObserveEncode(start time.Time, err error) {
	if c == nil {
		return
	}
	c.encodeLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		c.encodeErrors.Inc()
		return
	}
	c.encodedBlocks.Inc()
}
