// Command huffc compresses and decompresses files with a byte-level
// Huffman codec.
//
// Usage:
//
//	huffc c [options] <file>        compress to <file>.huf (use "-" for stdin)
//	huffc d [options] <file>.huf    decompress to <file>-recovered
//	huffc info <file>.huf           display archive header details
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/deepteams/huff"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "c":
		err = runCompress(os.Args[2:])
	case "d":
		err = runDecompress(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "huffc: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "huffc: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  huffc c [options] <file>        Compress a file using the Huffman codec
  huffc d [options] <file>.huf    Decompress a .huf archive
  huffc info <file>.huf           Display archive header details

Use "-" as input to read from stdin, "-o -" to write to stdout.

Run "huffc <command> -h" for command-specific options.
`)
}

// openInput returns an io.ReadCloser for the given path.
// If path is "-", stdin is returned (caller should not close).
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// --- c ---

func runCompress(args []string) error {
	fs := flag.NewFlagSet("c", flag.ContinueOnError)
	output := fs.String("o", "", `output path (default: <input>.huf, "-" for stdout)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("c: missing input file\nUsage: huffc c [options] <file>")
	}
	inputPath := fs.Arg(0)

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("c: reading input: %w", err)
	}

	if *output == "-" {
		return huff.Encode(os.Stdout, data)
	}

	outputPath := *output
	if outputPath == "" {
		if inputPath == "-" {
			outputPath = "output.huf"
		} else {
			outputPath = inputPath + ".huf"
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := huff.Encode(out, data); err != nil {
		out.Close()
		os.Remove(outputPath)
		return fmt.Errorf("c: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outputPath)
		return err
	}

	fi, _ := os.Stat(outputPath)
	ratio := 0.0
	if len(data) > 0 {
		ratio = float64(fi.Size()) / float64(len(data)) * 100
	}
	fmt.Fprintf(os.Stderr, "Compressed %s → %s (%d → %d bytes, %.1f%%)\n",
		inputPath, outputPath, len(data), fi.Size(), ratio)
	return nil
}

// --- d ---

func runDecompress(args []string) error {
	fs := flag.NewFlagSet("d", flag.ContinueOnError)
	output := fs.String("o", "", `output path (default: <input>-recovered, "-" for stdout)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("d: missing input file\nUsage: huffc d [options] <file>.huf")
	}
	inputPath := fs.Arg(0)

	if inputPath != "-" && !strings.HasSuffix(inputPath, ".huf") {
		return fmt.Errorf("d: %s: must be a .huf archive", inputPath)
	}

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	data, err := huff.Decode(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("d: %w", err)
	}

	if *output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	outputPath := *output
	if outputPath == "" {
		if inputPath == "-" {
			outputPath = "output-recovered"
		} else {
			outputPath = recoveredName(inputPath)
		}
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		os.Remove(outputPath)
		return err
	}

	fmt.Fprintf(os.Stderr, "Decompressed %s → %s (%d bytes)\n",
		inputPath, outputPath, len(data))
	return nil
}

// recoveredName derives the decompressed output name from an archive name:
// the .huf suffix is stripped and "-recovered" is inserted before the
// original extension, or appended when there is none.
//
//	report.txt.huf → report-recovered.txt
//	blob.huf       → blob-recovered
func recoveredName(path string) string {
	base := strings.TrimSuffix(path, ".huf")
	if ext := filepath.Ext(base); ext != "" {
		return strings.TrimSuffix(base, ext) + "-recovered" + ext
	}
	return base + "-recovered"
}

// --- info ---

func runInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("info: missing input file\nUsage: huffc info <file>.huf")
	}
	inputPath := args[0]

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := huff.Stat(in)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	name := inputPath
	if inputPath == "-" {
		name = "<stdin>"
	}

	fmt.Printf("File:            %s\n", name)
	fmt.Printf("Symbols:         %d\n", info.Symbols)
	fmt.Printf("Original length: %d bytes\n", info.OriginalLength)
	fmt.Printf("Header size:     %d bytes\n", info.HeaderSize)
	fmt.Printf("Payload size:    %d bytes\n", info.PayloadSize)
	fmt.Printf("Archive size:    %d bytes\n", info.ArchiveSize())
	if info.OriginalLength > 0 {
		fmt.Printf("Ratio:           %.1f%%\n",
			float64(info.ArchiveSize())/float64(info.OriginalLength)*100)
	}
	return nil
}
