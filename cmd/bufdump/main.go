// bufdump prints a window of a file as hex or decoded text. It maps the
// file and wraps it in a borrowing buffer, so nothing is copied on the
// way in; the window flags go through the clamping Slice, so out-of-range
// requests print whatever part of the file they cover.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joshuapare/bufkit/buf"
	"github.com/joshuapare/bufkit/internal/mmfile"
)

func main() {
	off := flag.Int("off", 0, "window offset in bytes")
	length := flag.Int("len", -1, "window length in bytes (default: to end of file)")
	enc := flag.String("enc", "hex", "output encoding: hex, utf16le or latin1")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: bufdump [options] <file>\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	logOut := io.Discard
	if *verbose {
		logOut = os.Stderr
	}
	log := slog.New(slog.NewTextHandler(logOut, nil))

	if err := run(log, flag.Arg(0), *off, *length, *enc); err != nil {
		fmt.Fprintf(os.Stderr, "bufdump: %v\n", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, path string, off, length int, enc string) error {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return err
	}
	defer cleanup()
	log.Info("mapped file", "path", path, "size", len(data))

	b := buf.Wrap(data)
	if length < 0 {
		length = b.Len()
	}
	b.Slice(off, length)
	log.Info("window", "off", off, "len", b.Len())

	switch enc {
	case "hex":
		fmt.Println(b.Hex())
	case "utf16le":
		s, err := b.StringUTF16LE()
		if err != nil {
			return err
		}
		fmt.Println(s)
	case "latin1":
		s, err := b.StringWindows1252()
		if err != nil {
			return err
		}
		fmt.Println(s)
	default:
		return fmt.Errorf("unknown encoding %q", enc)
	}
	return nil
}
