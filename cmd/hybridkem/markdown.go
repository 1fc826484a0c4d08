package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/concretekem/hybridkem/pkg/log"
	"github.com/concretekem/hybridkem/pkg/vectors"
)

func markdownCommand() {
	fs := flag.NewFlagSet("markdown", flag.ExitOnError)
	out := fs.String("out", "", "Output file (default: stdout)")
	logLevel, logFormat := addLoggingFlags(fs)
	fs.Usage = func() {
		fmt.Println(`USAGE: hybridkem markdown [options] <file>

Renders a TestVectors JSON file as the IETF-style Markdown block format:
one '~~~'-fenced block per vector, holding each field as a 64-column-wrapped
'label = hex' entry, grouped by suite.

OPTIONS:`)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[2:])

	logger, err := setupLogger("markdown", *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "markdown: %v\n", err)
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

	logger.Info("rendering vectors to markdown", log.Fields{"file": args[0]})
	rendered := vectors.RenderMarkdown(tv)

	if *out == "" {
		fmt.Print(rendered)
		return
	}
	if err := os.WriteFile(*out, []byte(rendered), 0o644); err != nil {
		logger.Error("writing output failed", log.Fields{"file": *out, "error": err.Error()})
		os.Exit(1)
	}
	logger.Info("wrote markdown file", log.Fields{"file": *out})
	fmt.Printf("wrote %s\n", *out)
}
