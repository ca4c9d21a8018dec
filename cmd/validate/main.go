// Command validate checks a weather observation CSV the same way the analyzer
// loads it, but reports every problem instead of stopping at the first one.
// Field-count and numeric failures fail validation; unrecognized dates are
// reported as warnings because the analyzer keeps those records.
//
// Usage:
//
//	go run ./cmd/validate -file weatherdata.csv
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/couchcryptid/weather-data-analyzer/internal/adapter/csvfile"
	"github.com/couchcryptid/weather-data-analyzer/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name     string
	warnOnly bool
	errors   []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return p.warnOnly || len(p.errors) == 0 }

func (p *phase) status() string {
	switch {
	case len(p.errors) == 0:
		return "\033[32mPASS\033[0m"
	case p.warnOnly:
		return fmt.Sprintf("\033[33mWARN (%d)\033[0m", len(p.errors))
	default:
		return fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
	}
}

func main() {
	file := flag.String("file", "", "path to the weather data CSV")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*file, os.Stdout); code != 0 {
		os.Exit(code)
	}
}

func run(path string, out io.Writer) int {
	fmt.Fprintln(out, "=== Weather Data Validation ===")
	fmt.Fprintln(out)

	lines, err := readDataLines(path)
	if err != nil {
		fmt.Fprintf(out, "FATAL: %v\n", err)
		return 1
	}

	phases := validate(lines)

	allPassed := true
	for _, p := range phases {
		if !p.passed() {
			allPassed = false
		}
		fmt.Fprintf(out, "  %-34s %s\n", p.name, p.status())
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Data lines: %d\n", len(lines))

	for _, p := range phases {
		if len(p.errors) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

// dataLine is one non-header line with its 1-based line number.
type dataLine struct {
	num  int
	text string
}

func readDataLines(path string) ([]dataLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []dataLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), csvfile.MaxLineBytes)
	n := 0
	for scanner.Scan() {
		n++
		if n == 1 {
			continue
		}
		lines = append(lines, dataLine{num: n, text: scanner.Text()})
	}
	return lines, scanner.Err()
}

func validate(lines []dataLine) []*phase {
	arity := &phase{name: "Phase 1: Field Arity"}
	numeric := &phase{name: "Phase 2: Numeric Fields"}
	dates := &phase{name: "Phase 3: Date Formats", warnOnly: true}

	for _, l := range lines {
		rec, err := domain.ParseLine(l.text)
		switch {
		case errors.Is(err, domain.ErrFieldCount):
			arity.errorf("line %d: %v", l.num, err)
			continue
		case err != nil:
			numeric.errorf("line %d: %v", l.num, err)
		}

		date := rec.Date()
		if err != nil {
			date, _, _ = strings.Cut(l.text, ",")
		}
		if !domain.ExtractMonth(date).Parsed() {
			dates.errorf("line %d: unrecognized date %q (kept, excluded from monthly averages)", l.num, date)
		}
	}

	return []*phase{arity, numeric, dates}
}
