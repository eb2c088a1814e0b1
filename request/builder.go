package request

import (
	"strings"

	"github.com/arloliu/go-uds/internal/hexenc"
	"github.com/arloliu/go-uds/logger"
	"github.com/arloliu/go-uds/uds"
)

// Builder encodes UDS requests. The zero-cost configuration carries a logger
// for encoding diagnostics and an optional strict flag; builders hold no
// other state, so a single Builder is safe for concurrent use from multiple
// goroutines.
type Builder struct {
	logger logger.Logger
	strict bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger that receives encoding diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// WithStrict enables strict mode. In strict mode any parameter whose value
// was changed by masking is reported through the builder's logger at Warn
// level. The encoded output is identical either way.
func WithStrict(enabled bool) Option {
	return func(b *Builder) {
		b.strict = enabled
	}
}

// New creates a request Builder. Without options it logs through the package
// default logger and encodes permissively.
func New(opts ...Option) *Builder {
	b := &Builder{
		logger: logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// byteTok renders a 1-byte field, masking out-of-range values.
func (b *Builder) byteTok(sid uds.SID, field string, v int) string {
	if b.strict && v != v&0xFF {
		b.logger.Warn("value truncated to one byte",
			"service", sid.String(), "field", field, "value", v)
	}
	return hexenc.Byte(v)
}

// wordTok renders a 2-byte field as high then low byte, masking out-of-range
// values.
func (b *Builder) wordTok(sid uds.SID, field string, v int) string {
	if b.strict && v != v&0xFFFF {
		b.logger.Warn("value truncated to two bytes",
			"service", sid.String(), "field", field, "value", v)
	}
	return hexenc.Fixed(v, 2)
}

func sidTok(sid uds.SID) string {
	return hexenc.Byte(int(sid))
}

// join concatenates token runs with single spaces, skipping absent runs, so
// omitted optional records never leave trailing or doubled separators.
func join(tokens ...string) string {
	var sb strings.Builder
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok)
	}
	return sb.String()
}

// addressWidths splits an addressAndLengthFormatIdentifier byte into the
// byte widths of the memoryAddress (low nibble) and memorySize (high nibble)
// fields.
func addressWidths(formatIdentifier int) (addressWidth, sizeWidth int) {
	return formatIdentifier & 0x0F, (formatIdentifier & 0xF0) >> 4
}
