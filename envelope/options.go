package envelope

import (
	"fmt"

	"github.com/arloliu/cdp/errs"
	"github.com/arloliu/cdp/format"
	"github.com/arloliu/cdp/internal/options"
)

// Option configures Seal.
type Option = options.Option[*config]

type config struct {
	compression format.CompressionType
	bigEndian   bool
}

func newConfig(opts []Option) (config, error) {
	cfg := config{compression: format.CompressionNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return config{}, err
	}

	return cfg, nil
}

// WithCompression compresses the payload before line coding.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *config) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, uint8(compression))
		}
		c.compression = compression

		return nil
	})
}

// WithBigEndian writes the header length and checksum fields big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = true
	})
}

// WithLittleEndian writes the header length and checksum fields little-endian (default).
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = false
	})
}
