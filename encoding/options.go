package encoding

import "github.com/arloliu/cdp/internal/options"

// DecodeOption configures a Decode or AppendDecode call.
type DecodeOption = options.Option[*decodeConfig]

type decodeConfig struct {
	strictSymbols bool
	strictLength  bool
}

func newDecodeConfig(opts []DecodeOption) (decodeConfig, error) {
	cfg := decodeConfig{}
	if err := options.Apply(&cfg, opts...); err != nil {
		return decodeConfig{}, err
	}

	return cfg, nil
}

// WithStrictSymbols rejects units that contain a "00" or "11" symbol with errs.ErrInvalidSymbol.
//
// Without it, such symbols decode as "01", matching the lenient reference decoder.
func WithStrictSymbols() DecodeOption {
	return options.NoError(func(c *decodeConfig) {
		c.strictSymbols = true
	})
}

// WithStrictLength rejects odd-length input with errs.ErrOddLength.
//
// Without it, a trailing odd byte is ignored.
func WithStrictLength() DecodeOption {
	return options.NoError(func(c *decodeConfig) {
		c.strictLength = true
	})
}
