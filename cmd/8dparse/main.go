package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/AOSC-Archive/8dparser/apt"
	"github.com/AOSC-Archive/8dparser/control"
	"github.com/AOSC-Archive/8dparser/deb"
)

// main is the entry point for the 8dparse CLI tool.
func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "dump":
		runDump(os.Args[2:])
	case "fmt":
		runFmt(os.Args[2:])
	case "control":
		runControl(os.Args[2:])
	case "verify":
		runVerify(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

// printUsage prints the help message to stdout.
func printUsage() {
	fmt.Println("Usage: 8dparse <command> [flags]")
	fmt.Println("\nCommands:")
	fmt.Println("  dump     Parse a control file and print it as YAML")
	fmt.Println("  fmt      Reformat a control file canonically")
	fmt.Println("  control  Print the control stanza of a .deb package")
	fmt.Println("  verify   Check an InRelease signature and print the stanza")
}

// runDump parses a stanza file and prints the parsed structure.
func runDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	var input string
	fs.StringVar(&input, "input", "", "Control file path (default stdin)")
	var format string
	fs.StringVar(&format, "format", "yaml", "Output format (yaml, text)")
	fs.Parse(args)

	doc := readDocument(input)
	switch format {
	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			log.Fatalf("Failed to render YAML: %v", err)
		}
		os.Stdout.Write(out)
	case "text":
		if _, err := doc.WriteTo(os.Stdout); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
	default:
		log.Fatalf("Unknown format %q (want yaml or text)", format)
	}
}

// runFmt parses a stanza file and re-serializes it in canonical form.
func runFmt(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	var input string
	fs.StringVar(&input, "input", "", "Control file path (default stdin)")
	fs.Parse(args)

	doc := readDocument(input)
	if _, err := doc.WriteTo(os.Stdout); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// runControl extracts and prints the control stanza of a .deb file.
func runControl(args []string) {
	fs := flag.NewFlagSet("control", flag.ExitOnError)
	var input string
	fs.StringVar(&input, "input", "", "Path to .deb file")
	fs.Parse(args)

	if input == "" {
		log.Fatal("--input is required")
	}

	f, err := os.Open(input)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", input, err)
	}
	defer f.Close()

	st, err := deb.ReadControl(f)
	if err != nil {
		log.Fatalf("Failed to read control file: %v", err)
	}
	fmt.Print(st.String())
}

// runVerify checks a clearsigned InRelease file against a public key
// and prints the verified Release stanza.
func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	var input string
	fs.StringVar(&input, "input", "", "Path to InRelease file")
	var keyPath string
	fs.StringVar(&keyPath, "key", "", "Path to armored public key")
	fs.Parse(args)

	if input == "" || keyPath == "" {
		log.Fatal("--input and --key are required")
	}

	signed, err := os.ReadFile(input)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", input, err)
	}
	pub, err := os.ReadFile(keyPath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", keyPath, err)
	}

	rel, err := apt.ParseInRelease(signed, string(pub))
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}
	fmt.Print(rel.Stanza.String())
}

// readDocument parses stanzas from a file path or stdin.
func readDocument(path string) control.Document {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", path, err)
		}
		defer f.Close()
		r = f
	}

	doc, err := control.Decode(r)
	if err != nil {
		log.Fatalf("Parse error: %v", err)
	}
	return doc
}
