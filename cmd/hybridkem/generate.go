package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/concretekem/hybridkem/pkg/ciphersuite"
	"github.com/concretekem/hybridkem/pkg/log"
	"github.com/concretekem/hybridkem/pkg/vectors"
)

func generateCommand() {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	suiteName := fs.String("suite", "", "Suite to generate for: p256, x25519, p384 (default: all three)")
	count := fs.Int("count", 10, "Number of vectors to generate per suite")
	out := fs.String("out", "", "Output file (default: stdout)")
	logLevel, logFormat := addLoggingFlags(fs)

	fs.Usage = func() {
		fmt.Println(`USAGE: hybridkem generate [options]

Generate deterministic test vectors: each vector's seed and randomness are
fixed byte patterns, so the same (suite, count) always produces the same
vectors.

OPTIONS:`)
		fs.PrintDefaults()
	}

	_ = fs.Parse(os.Args[2:])

	logger, err := setupLogger("generate", *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}

	var data []byte

	if *suiteName == "" {
		logger.Info("generating vectors for all suites", log.Fields{"count": *count})
		tv, genErr := vectors.GenerateAll(*count)
		if genErr != nil {
			logger.Error("generate failed", log.Fields{"error": genErr.Error()})
			os.Exit(1)
		}
		data, err = json.MarshalIndent(tv, "", "  ")
	} else {
		s, parseErr := ciphersuite.ParseName(*suiteName)
		if parseErr != nil {
			logger.Error("generate failed", log.Fields{"error": parseErr.Error()})
			os.Exit(1)
		}
		logger.Info("generating vectors", log.Fields{"suite": s.String(), "count": *count})
		vs, genErr := vectors.Generate(s, *count)
		if genErr != nil {
			logger.Error("generate failed", log.Fields{"error": genErr.Error()})
			os.Exit(1)
		}
		data, err = json.MarshalIndent(vs, "", "  ")
	}
	if err != nil {
		logger.Error("encoding output failed", log.Fields{"error": err.Error()})
		os.Exit(1)
	}
	data = append(data, '\n')

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("writing output failed", log.Fields{"file": *out, "error": err.Error()})
		os.Exit(1)
	}
	logger.Info("wrote vector file", log.Fields{"file": *out})
	fmt.Printf("wrote %s\n", *out)
}
