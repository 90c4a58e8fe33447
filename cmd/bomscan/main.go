package main

import (
	"flag"
	"fmt"
	"os"
	"slices"

	"go.uber.org/zap"

	"github.com/wippyai/text-codec/bom"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to input file")
		outFile     = flag.String("out", "", "Path to converted output file")
		from        = flag.String("from", "auto", "Source encoding (auto, utf8, utf16le, utf16be, utf32le, utf32be, ...)")
		to          = flag.String("to", "", "Target encoding; omit to only detect and report")
		emitBOM     = flag.Bool("bom", false, "Prefix converted output with the target signature")
		list        = flag.Bool("list", false, "List known signatures and exit")
		interactive = flag.Bool("i", false, "Interactive inspector TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			bom.SetLogger(logger)
		}
	}

	if *list {
		printTable()
		return
	}

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: bomscan -in <file> [-from enc] [-to enc] [-out file] [-bom]")
		fmt.Fprintln(os.Stderr, "       bomscan -in <file> -i  (interactive inspector)")
		fmt.Fprintln(os.Stderr, "       bomscan -list")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*inFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, *outFile, *from, *to, *emitBOM); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, outFile, from, to string, emitBOM bool) error {
	data, err := os.ReadFile(inFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	srcEnc, err := bom.Parse(from)
	if err != nil {
		return err
	}

	dec := bom.New[rune](srcEnc)
	units, err := dec.Decode(data, nil, nil)
	if err != nil {
		return err
	}

	origin := "fallback"
	if dec.SignatureFound() {
		origin = fmt.Sprintf("signature % X", dec.Signature())
	} else if srcEnc == dec.Encoding() {
		origin = "explicit"
	}
	fmt.Fprintf(os.Stderr, "%s: %s (%s), %d bytes, %d code points\n",
		inFile, dec.Encoding(), origin, len(data), len(units))

	if to == "" {
		return nil
	}

	dstEnc, err := bom.Parse(to)
	if err != nil {
		return err
	}
	enc := bom.New[rune](dstEnc)
	out, err := enc.Encode(units, nil)
	if err != nil {
		return err
	}
	if emitBOM {
		out = append(slices.Clone(enc.Signature()), out...)
	}

	if outFile == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(outFile, out, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "%s: wrote %d bytes as %s\n", outFile, len(out), dstEnc)
	return nil
}

func printTable() {
	fmt.Println("encoding    width  signature    detect  fallback")
	for id := bom.Unknown; id <= bom.UTF32LE; id++ {
		e := bom.EntryFor(id)

		sig := "-"
		if len(e.Signature) > 0 {
			sig = fmt.Sprintf("% X", e.Signature)
		}
		detect := "no"
		if e.AutoDetect {
			detect = "yes"
		}
		fallback := "-"
		if e.HasFallback {
			fallback = e.Fallback.String()
		}
		fmt.Printf("%-11s %-6d %-12s %-7s %s\n",
			id, int(e.Width)*8, sig, detect, fallback)
	}
}
