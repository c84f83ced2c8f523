// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command projectron transforms coordinates between two CRS definitions
// read from stdin or the command line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	proj "github.com/go-geodesy/projectron"
)

var (
	fromFlag   = flag.String("from", "WGS84", "source CRS definition (PROJ string, WKT, PROJJSON or EPSG:n)")
	toFlag     = flag.String("to", "", "destination CRS definition (required)")
	gridFlag   = flag.String("grid", "", "name=path.gsb pairs (comma-separated) of NTv2 grids to preload")
	precFlag   = flag.Int("prec", 6, "decimal places in printed output")
	inverseOpt = flag.Bool("inverse", false, "swap -from/-to before transforming")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -to <def> [options] [x y [x y ...]]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Transform coordinate pairs between CRS definitions. With no positional\n")
		fmt.Fprintf(os.Stderr, "arguments, reads whitespace-separated \"x y\" pairs from stdin, one per line.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -from WGS84 -to \"+proj=utm +zone=33 +datum=WGS84\" 12.5 41.9\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  echo \"12.5 41.9\" | %s -to EPSG:32633\n", os.Args[0])
	}

	args := parseCommandLineArgs()

	if err := loadGrids(*gridFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	from, to := *fromFlag, *toFlag
	if *inverseOpt {
		from, to = to, from
	}
	if to == "" {
		flag.Usage()
		os.Exit(1)
	}

	conv, err := proj.MakeConverter(from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) > 0 {
		runArgs(conv, args)
		return
	}
	runStdin(conv)
}

// parseCommandLineArgs allows flags to appear before, after, or between the
// positional coordinate values, the way gribinfo's pre-scan does.
func parseCommandLineArgs() []string {
	var flagArgs, positional []string
	for i := 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		if strings.HasPrefix(arg, "-") {
			flagArgs = append(flagArgs, arg)
			if takesValue(arg) && i+1 < len(os.Args) {
				i++
				flagArgs = append(flagArgs, os.Args[i])
			}
			continue
		}
		positional = append(positional, arg)
	}
	if err := flag.CommandLine.Parse(flagArgs); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}
	return positional
}

func takesValue(flagName string) bool {
	switch strings.TrimLeft(flagName, "-") {
	case "from", "to", "grid", "prec":
		return true
	}
	return false
}

func runArgs(conv proj.Converter, args []string) {
	if len(args)%2 != 0 {
		fmt.Fprintf(os.Stderr, "Error: coordinates must be given in x y pairs, got %d values\n", len(args))
		os.Exit(1)
	}
	for i := 0; i+1 < len(args); i += 2 {
		x, errX := strconv.ParseFloat(args[i], 64)
		y, errY := strconv.ParseFloat(args[i+1], 64)
		if errX != nil || errY != nil {
			fmt.Fprintf(os.Stderr, "Error: bad coordinate pair %q %q\n", args[i], args[i+1])
			os.Exit(1)
		}
		printTransformed(conv, x, y)
	}
}

func runStdin(conv proj.Converter) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			fmt.Fprintf(os.Stderr, "Error: malformed line %q\n", line)
			continue
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			fmt.Fprintf(os.Stderr, "Error: malformed coordinates %q\n", line)
			continue
		}
		printTransformed(conv, x, y)
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
		os.Exit(1)
	}
}

func printTransformed(conv proj.Converter, x, y float64) {
	out, err := conv(proj.NewPoint2D(x, y))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("%.*f %.*f\n", *precFlag, out.X, *precFlag, out.Y)
}

// loadGrids parses "-grid name=path,name2=path2" and preloads each NTv2
// file into the DefaultEngine before any transform runs.
func loadGrids(spec string) error {
	if spec == "" {
		return nil
	}
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("malformed -grid entry %q, want name=path", entry)
		}
		name, path := parts[0], parts[1]
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening grid %q: %w", name, err)
		}
		err = proj.LoadGridFile(name, f)
		closeErr := f.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return fmt.Errorf("closing grid %q: %w", name, closeErr)
		}
	}
	return nil
}
