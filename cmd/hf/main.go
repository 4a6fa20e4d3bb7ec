// Command hf compresses and decompresses text files with Huffman codes.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	huffman "github.com/chronos-tachyon/hufftext"
)

const usageHint = `
USAGE:

    hf -c SRC DST
    hf -d SRC DST
    hf --help

For more information try --help
`

const usageText = `hf - lossless text compression with Huffman codes

USAGE:

    hf -c SRC DST    compress the text file SRC into the container DST
    hf -d SRC DST    decompress the container SRC into the text file DST
    hf --help        show this message

SRC must be UTF-8 text.  DST is replaced atomically.
`

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hf: ")
	os.Exit(run(os.Args[1:], os.Stdout, log.Default()))
}

func run(args []string, stdout io.Writer, logger *log.Logger) int {
	switch {
	case len(args) == 3 && args[0] == "-c":
		if err := huffman.CompressFile(args[1], args[2]); err != nil {
			logger.Printf("error: %v", err)
			return exitError
		}
		logger.Printf("compressed %s -> %s", args[1], args[2])
		return exitOK

	case len(args) == 3 && args[0] == "-d":
		if err := huffman.DecompressFile(args[1], args[2]); err != nil {
			logger.Printf("error: %v", err)
			return exitError
		}
		logger.Printf("decompressed %s -> %s", args[1], args[2])
		return exitOK

	case len(args) == 1 && args[0] == "--help":
		fmt.Fprint(stdout, usageText)
		return exitOK

	default:
		fmt.Fprint(stdout, usageHint)
		return exitUsage
	}
}
