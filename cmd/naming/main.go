// Package main provides the CLI entrypoint for the naming tool.
//
// naming captures identifier words from files or stdin, keeps the ones whose
// naming-case shape was asked for, and prints every survivor converted into
// the requested target styles:
//   - plain lines (default)
//   - JSON (-json)
//   - one alternation regex per word (-regex)
//   - regex JSON (-json -regex)
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"naming-clt/captor"
	"naming-clt/convert"
	"naming-clt/options"
)

func main() {
	output, err := operate(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// a trailing newline only when a human is watching
	if stdoutIsTerminal() {
		fmt.Println(output)
	} else {
		fmt.Print(output)
	}
}

// operate does everything from argument parsing to the final output string.
func operate(args []string) (string, error) {
	set, err := parseArgs(args)
	if err != nil {
		return "", err
	}

	texts, err := readInput(set.Files, set.EOF)
	if err != nil {
		return "", err
	}

	return run(set, texts)
}

// run wires the pipeline: captor -> filter -> convertor.
func run(set *options.Set, texts []string) (string, error) {
	cpt, err := captor.NewCaptor(set.Locators)
	if err != nil {
		return "", err
	}

	filter, err := convert.NewFilter(set.Filter)
	if err != nil {
		return "", err
	}

	words := cpt.CaptureWords(texts)
	cases := filter.ToCases(words)

	if set.Debug {
		debugDump(words, cases)
	}

	convertor := convert.NewConvertor(set.Output, cases)

	switch {
	case set.JSON && set.Regex:
		return convertor.ToRegexJSON(), nil
	case set.JSON:
		return convertor.ToJSON(), nil
	case set.Regex:
		return convertor.ToRegex(), nil
	default:
		return convertor.ToLines(), nil
	}
}

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func parseArgs(args []string) (*options.Set, error) {
	fs := flag.NewFlagSet("naming", flag.ContinueOnError)

	var (
		filterValue string
		outputValue string
		locators    stringList
		configPath  string
	)

	set := &options.Set{}

	fs.StringVar(&filterValue, "filter", "", "naming case tags to accept as input, e.g. S,s,k,c,p or h")
	fs.StringVar(&filterValue, "f", "", "shorthand for -filter")
	fs.StringVar(&outputValue, "output", "", "naming case tags to render, in order, e.g. s,c,p")
	fs.StringVar(&outputValue, "o", "", "shorthand for -output")
	fs.Var(&locators, "locator", "capture only the word following this literal prefix (repeatable)")
	fs.Var(&locators, "l", "shorthand for -locator")
	fs.StringVar(&set.EOF, "eof", "", "stop reading input at a line equal to this marker")
	fs.StringVar(&configPath, "config", "", "defaults file path (default "+options.ConfigFileName+" if present)")
	fs.BoolVar(&set.JSON, "json", false, "serialize the result as JSON")
	fs.BoolVar(&set.Regex, "regex", false, "join renderings into one alternation regex per word")
	fs.BoolVar(&set.Debug, "debug", false, "dump captured words and classified cases to stderr")

	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintf(out, "Usage: naming [flags] [file ...]\n\n")
		_, _ = fmt.Fprintf(out, "Reads from stdin when no file is given.\n")
		_, _ = fmt.Fprintf(out, "Tags: S screaming snake, s snake, k kebab, c camel, h hungarian, p pascal.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	set.Files = fs.Args()
	set.Locators = locators
	if filterValue != "" {
		set.Filter = options.ParseTags(filterValue)
	}
	if outputValue != "" {
		set.Output = options.ParseTags(outputValue)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	set.ApplyConfig(cfg)

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}

func loadConfig(path string) (*options.Config, error) {
	if path != "" {
		return options.LoadFile(path)
	}

	return options.LoadDefault()
}
