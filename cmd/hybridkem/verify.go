package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/concretekem/hybridkem/pkg/log"
	"github.com/concretekem/hybridkem/pkg/vectors"
)

func verifyCommand() {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	logLevel, logFormat := addLoggingFlags(fs)
	fs.Usage = func() {
		fmt.Println(`USAGE: hybridkem verify [options] <file>

Recomputes every field of every vector in <file> (a TestVectors JSON file
in the qsf_*_mlkem*_shake256_sha3256 schema) from its (seed, randomness)
alone, and reports the first mismatching field per vector. Exits nonzero
if any vector fails.

OPTIONS:`)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[2:])

	logger, err := setupLogger("verify", *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify: %v\n", err)
		os.Exit(1)
	}

	args := fs.Args()
	if len(args) != 1 {
		fs.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		logger.Error("reading vector file failed", log.Fields{"file": args[0], "error": err.Error()})
		os.Exit(1)
	}

	var tv vectors.TestVectors
	if err := json.Unmarshal(data, &tv); err != nil {
		logger.Error("parsing vector file failed", log.Fields{"file": args[0], "error": err.Error()})
		os.Exit(1)
	}

	logger.Info("verifying vectors", log.Fields{"file": args[0]})
	errs := vectors.VerifyAll(tv)
	total := len(tv.QsfP256Mlkem768Shake256Sha3256) + len(tv.QsfX25519Mlkem768Shake256Sha3256) + len(tv.QsfP384Mlkem1024Shake256Sha3256)
	if len(errs) == 0 {
		fmt.Printf("OK: %d vectors verified\n", total)
		return
	}

	for _, e := range errs {
		logger.Error("vector mismatch", log.Fields{"error": e.Error()})
	}
	fmt.Fprintf(os.Stderr, "FAILED: %d/%d vectors mismatched\n", len(errs), total)
	os.Exit(1)
}
