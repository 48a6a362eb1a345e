package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/wordforge/wordforge"
	"github.com/wordforge/wordforge/expand"
	"github.com/wordforge/wordforge/report"
	"github.com/wordforge/wordforge/score"
)

const usageText = `
wordforge - audit wordlist generator

wordforge derives password guess candidates from personal tokens (names,
pets, dates) for password-strength auditing, and can rate a single
password on a 0-4 scale.

VERSION: %s
GIT TAG: %s
BUILD DATE: %s

USAGE:

	# Generate a wordlist from a few tokens
	$ wordforge Alice Fluffy 1990

	# Same tokens, json report written to a file
	$ wordforge -fmt=json -out=wordlist.json Alice,Fluffy,1990

	# Skip year suffixes and cap the output
	$ wordforge -no-years -max-words=1000 Alice Bob

	# Run a specific set of expanders (by default all expanders run):
	$ wordforge -include=W101,W102 Alice

	# Rate a single password instead of generating
	$ wordforge -analyze 'S3cret!2020'

`

var (
	// format output
	flagFormat = flag.String("fmt", "text", "Set output format. Valid options are: json, yaml, csv, or text")

	// output file
	flagOutput = flag.String("out", "", "Set output file for results")

	// config file
	flagConfig = flag.String("conf", "", "Path to optional config file")

	// quiet
	flagQuiet = flag.Bool("quiet", false, "Suppress progress logging")

	// size cap on the generated wordlist
	flagMaxWords = flag.Int("max-words", wordforge.DefaultMaxWords, "Maximum number of candidates to retain")

	// bound on simultaneous leet substitutions
	flagMaxSubs = flag.Int("max-subs", expand.DefaultMaxSubs, "Maximum simultaneous leetspeak substitutions per candidate")

	// sliding window of year suffixes
	flagYearsBack = flag.Int("years-back", expand.DefaultYearsBack, "Number of recent calendar years to append")

	// disable year suffixes
	flagNoYears = flag.Bool("no-years", false, "Do not append recent calendar years")

	// disable the common suffix catalog
	flagNoSuffixes = flag.Bool("no-suffixes", false, "Do not append common numeric/symbol suffixes")

	// expanders to explicitly include
	flagExpandersInclude = flag.String("include", "", "Comma separated list of expander IDs to include (see expander list)")

	// expanders to explicitly exclude
	flagExpandersExclude = flag.String("exclude", "", "Comma separated list of expander IDs to exclude (see expander list)")

	// disable colored output
	flagNoColor = flag.Bool("no-color", false, "Disable colored terminal output")

	// rate a password instead of generating
	flagAnalyze = flag.String("analyze", "", "Rate the supplied password instead of generating a wordlist")

	// log to file or stderr
	flagLogfile = flag.String("log", "", "Log messages to file rather than stderr")

	// tokens supplied via repeatable flag
	flagTokens tokenlist

	logger *log.Logger
)

func usage() {
	usageText := fmt.Sprintf(usageText, Version, GitTag, BuildDate)
	fmt.Fprintln(os.Stderr, usageText)
	fmt.Fprint(os.Stderr, "OPTIONS:\n\n")
	flag.PrintDefaults()
	fmt.Fprint(os.Stderr, "\n\nEXPANDERS:\n\n")

	// sorted expander list for ease of reading
	el := expand.Generate()
	for _, id := range el.IDs() {
		fmt.Fprintf(os.Stderr, "\t%s: %s\n", id, el[id].Description)
	}
	fmt.Fprint(os.Stderr, "\n")
}

func loadConfig(configFile string) (wordforge.Config, error) {
	config := wordforge.NewConfig()
	if configFile != "" {
		file, err := os.Open(configFile) // #nosec
		if err != nil {
			return nil, err
		}
		defer file.Close()
		if _, err := config.ReadFrom(file); err != nil {
			return nil, err
		}
	}
	// command line flags take precedence over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-words":
			config.SetGlobal(wordforge.MaxWords, strconv.Itoa(*flagMaxWords))
		case "max-subs":
			config.Set("W102", map[string]interface{}{"maxSubs": *flagMaxSubs})
		case "years-back":
			config.Set("W103", map[string]interface{}{"yearsBack": *flagYearsBack})
		case "quiet":
			config.SetGlobal(wordforge.Quiet, "true")
		}
	})
	if !*flagNoColor {
		config.SetGlobal(wordforge.Colorize, "true")
	}
	return config, nil
}

func loadExpanders(include, exclude string) expand.List {
	var filters []expand.Filter
	if include != "" {
		logger.Printf("including expanders: %s", include)
		including := strings.Split(include, ",")
		filters = append(filters, expand.NewFilter(false, including...))
	} else {
		logger.Println("including expanders: default")
	}

	excluding := strings.Split(exclude, ",")
	if *flagNoYears {
		excluding = append(excluding, "W103")
	}
	if *flagNoSuffixes {
		excluding = append(excluding, "W301")
	}
	if excluded := strings.Join(excluding, ","); strings.Trim(excluded, ",") != "" {
		logger.Printf("excluding expanders: %s", strings.Trim(excluded, ","))
		filters = append(filters, expand.NewFilter(true, excluding...))
	} else {
		logger.Println("excluding expanders: default")
	}
	return expand.Generate(filters...)
}

func saveReport(filename, format string, data *wordforge.ReportInfo) error {
	if filename == "" {
		return report.CreateReport(os.Stdout, format, data)
	}
	outfile, err := os.Create(filename) // #nosec
	if err != nil {
		return err
	}
	defer outfile.Close()
	return report.CreateReport(outfile, format, data)
}

// gatherTokens flattens positional arguments and -token flags, splitting
// comma separated values.
func gatherTokens(args []string) []string {
	tokens := append([]string{}, flagTokens...)
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

func analyzePassword(password string, enableColor bool) {
	result := score.NewScorer().Analyze(password)

	scoreText := "n/a"
	if result.Score != score.AbsentScore {
		scoreText = fmt.Sprintf("%d/4", result.Score)
	}
	if enableColor {
		switch {
		case result.Score >= 3:
			scoreText = color.Success.Render(scoreText)
		case result.Score == 2:
			scoreText = color.Notice.Render(scoreText)
		default:
			scoreText = color.Danger.Render(scoreText)
		}
	}

	fmt.Printf("Score:   %s\n", scoreText)
	fmt.Printf("Entropy: %.1f bits\n", result.Entropy)
	if result.CrackTimeDisplay != "" {
		fmt.Printf("Crack time: %s\n", result.CrackTimeDisplay)
	}
	for _, remark := range result.Feedback {
		fmt.Printf("  - %s\n", remark)
	}
}

func main() {
	flag.Var(&flagTokens, "token", "Token to seed generation. Can be supplied multiple times, or comma separated")
	flag.Usage = usage
	flag.Parse()
	prepareVersionInfo()

	// setup logging
	logWriter := io.Writer(os.Stderr)
	if *flagLogfile != "" {
		logfile, e := os.Create(*flagLogfile) // #nosec
		if e != nil {
			flag.Usage()
			log.Fatal(e)
		}
		defer logfile.Close()
		logWriter = logfile
	}
	if *flagQuiet {
		logger = log.New(io.Discard, "", 0)
	} else {
		logger = log.New(logWriter, "[wordforge] ", log.LstdFlags)
	}

	if *flagNoColor {
		color.Disable()
	}

	if *flagAnalyze != "" {
		analyzePassword(*flagAnalyze, !*flagNoColor)
		return
	}

	tokens := gatherTokens(flag.Args())
	if len(tokens) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	config, err := loadConfig(*flagConfig)
	if err != nil {
		logger.Fatal(err)
	}

	generator := wordforge.NewGenerator(config, logger)
	expanders := loadExpanders(*flagExpandersInclude, *flagExpandersExclude)
	generator.LoadExpanders(expanders.Expanders(config)...)

	candidates := generator.Generate(tokens...)
	stats := generator.Stats()
	logger.Printf("generated %d candidates from %d tokens (%d truncated)",
		len(candidates), stats.NumTokens, stats.NumTruncated)

	data := generator.Report(candidates).WithVersion(Version)
	if err := saveReport(*flagOutput, *flagFormat, data); err != nil {
		logger.Fatal(err)
	}
}
