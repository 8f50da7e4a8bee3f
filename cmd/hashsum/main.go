// Command hashsum prints 64-bit digests of files, or of stdin when no
// files are given.
//
//	hashsum go.mod doc.go
//	cat data | hashsum -a fnv1a
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/hupe1980/hashcode"
	"github.com/hupe1980/hashcode/farmhash"
	"github.com/hupe1980/hashcode/fnv1a"
)

var cli struct {
	Algorithm string   `short:"a" default:"farmhash" enum:"farmhash,fnv1a" help:"Hash algorithm (${enum})."`
	Verbose   bool     `short:"v" help:"Log per-file timing to stderr."`
	Paths     []string `arg:"" optional:"" type:"existingfile" help:"Files to hash; stdin when omitted."`
}

// codeWriter adapts a streaming Code to io.Writer so files can be fed
// through io.Copy without buffering them in memory.
type codeWriter struct {
	code hashcode.Code
}

func (w codeWriter) Write(p []byte) (int, error) {
	w.code.Append(p)
	return len(p), nil
}

func newCode() hashcode.Code {
	if cli.Algorithm == "fnv1a" {
		return fnv1a.New()
	}
	return farmhash.New()
}

func digest(r io.Reader) (uint64, error) {
	c := newCode()
	if _, err := io.Copy(codeWriter{code: c}, r); err != nil {
		return 0, err
	}
	return c.Sum64(), nil
}

func main() {
	kong.Parse(&cli,
		kong.Name("hashsum"),
		kong.Description("Print 64-bit digests of files or stdin."))

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if len(cli.Paths) == 0 {
		sum, err := digest(os.Stdin)
		if err != nil {
			logger.Error("hashing stdin failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("%016x  -\n", sum)
		return
	}

	exit := 0
	for _, path := range cli.Paths {
		start := time.Now()
		f, err := os.Open(path)
		if err != nil {
			logger.Error("open failed", "path", path, "error", err)
			exit = 1
			continue
		}
		sum, err := digest(f)
		f.Close()
		if err != nil {
			logger.Error("read failed", "path", path, "error", err)
			exit = 1
			continue
		}
		logger.Debug("hashed", "path", path, "algorithm", cli.Algorithm, "took", time.Since(start))
		fmt.Printf("%016x  %s\n", sum, path)
	}
	os.Exit(exit)
}
