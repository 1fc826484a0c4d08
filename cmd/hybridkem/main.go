package main

import (
	"fmt"
	"os"

	pkgversion "github.com/concretekem/hybridkem/pkg/version"
)

// Build-time variables (set via -ldflags).
var (
	version   = ""        // Set via -ldflags "-X main.version=x.y.z"
	buildTime = "unknown" // Set via -ldflags "-X main.buildTime=..."
	gitCommit = "unknown" // Set via -ldflags "-X main.gitCommit=..."
)

func getVersion() string {
	if version != "" {
		return version
	}
	return pkgversion.String()
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "generate":
		generateCommand()
	case "verify":
		verifyCommand()
	case "markdown":
		markdownCommand()
	case "selftest":
		selftestCommand()
	case "version":
		fmt.Printf("hybridkem version %s\n", getVersion())
		if buildTime != "unknown" {
			fmt.Printf("Built: %s\n", buildTime)
		}
		if gitCommit != "unknown" {
			fmt.Printf("Commit: %s\n", gitCommit)
		}
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hybridkem - Concrete Hybrid KEM Test-Vector & Conformance Tool

USAGE:
    hybridkem <command> [options]

COMMANDS:
    generate   Generate deterministic test vectors for one or all suites
    verify     Verify a test-vector file's regenerated fields
    markdown   Render a test-vector file as the IETF-style Markdown block format
    selftest   Run the internal round-trip self-test and report pass/fail
    version    Print version information
    help       Show this help message

Run 'hybridkem <command> --help' for more information on a command.

EXAMPLES:
    # Generate 10 vectors per suite to vectors.json
    hybridkem generate --count 10 --out vectors.json

    # Generate vectors for a single suite to stdout
    hybridkem generate --suite x25519 --count 5

    # Verify a vector file
    hybridkem verify vectors.json

    # Render a vector file as Markdown
    hybridkem markdown vectors.json

    # Run the internal conformance self-test
    hybridkem selftest

    # Show progress logging while verifying
    hybridkem verify --log-level debug vectors.json

PROJECT:
    Concrete Hybrid KEMs - ML-KEM combined with traditional ECDH/X25519

    Security: ML-KEM-768/1024 (NIST FIPS 203) + P-256/P-384/X25519
    Defense-in-depth: the combined shared secret is secure if either
    component is secure.`)
}
