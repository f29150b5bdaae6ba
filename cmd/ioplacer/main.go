// Command ioplacer runs one I/O placement against a deffixture input
// file and writes the result to a deffixture output file. It is a thin
// wrapper around the ioplacer package; the CLI surface itself is not
// part of the placement engine's contract.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/eder-matheus/ioplacer"
	"github.com/eder-matheus/ioplacer/internal/deffixture"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (see Config for recognised fields)")
	inPath := flag.String("in", "", "input fixture file, overrides inputDefFile from -config")
	outPath := flag.String("out", "", "output fixture file, overrides outputDefFile from -config")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := ioplacer.DefaultConfig()
	if *configPath != "" {
		loaded, err := ioplacer.LoadConfig(*configPath)
		if err != nil {
			fail(log, err)
		}
		cfg = loaded
	}
	if *inPath != "" {
		cfg.InputDefFile = *inPath
	}
	if *outPath != "" {
		cfg.OutputDefFile = *outPath
	}
	if cfg.InputDefFile == "" || cfg.OutputDefFile == "" {
		fail(log, fmt.Errorf("both an input and output fixture path are required (-in/-out or inputDefFile/outputDefFile in -config)"))
	}

	fx := deffixture.Fixture{}
	if _, err := ioplacer.Run(context.Background(), cfg, fx, fx, log); err != nil {
		fail(log, err)
	}
}

func fail(log *logrus.Logger, err error) {
	log.Errorf("ioplacer: %s", err)
	os.Exit(1)
}
