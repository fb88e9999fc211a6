// Command cdpcheck runs encode/decode self-checks of the CDP line coder.
//
// Check 0 encodes the single byte 0b01110100 and prints every stage in binary. Check 1
// line-codes a block of pseudo-random bytes, decodes it and reports every byte that did
// not survive. With -compression the same block also goes through a sealed envelope.
//
// Usage:
//
//	cdpcheck [-size 4096] [-seed 1] [-compression zstd] [-show] [-v]
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/arloliu/cdp/format"
)

type config struct {
	size        int
	seed        uint64
	compression format.CompressionType
	envelope    bool
	show        bool
}

func main() {
	var (
		size        = flag.Int("size", 4096, "Number of random bytes for check 1")
		seed        = flag.Uint64("seed", 1, "Seed of the random input")
		compression = flag.String("compression", "", "Also run an envelope round trip: none, zstd, s2, lz4")
		show        = flag.Bool("show", false, "Print input, encoded and decoded data of check 1")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config{size: *size, seed: *seed, show: *show}
	if *compression != "" {
		cfg.envelope = true
		if cfg.compression, err = format.ParseCompressionType(*compression); err != nil {
			logger.Error("invalid -compression", zap.String("compression", *compression), zap.Error(err))
			os.Exit(1)
		}
	}

	if cfg.size < 0 {
		logger.Error("invalid -size", zap.Int("size", cfg.size))
		os.Exit(1)
	}

	if !runChecks(os.Stdout, logger, cfg) {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return cfg.Build()
}
