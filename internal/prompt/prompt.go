// Package prompt implements the interactive scale factor collection loop.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ErrCancelled is returned when the operator interrupts input collection.
// The caller maps this to a clean process exit, not a failure.
var ErrCancelled = errors.New("input collection cancelled")

// ErrInputClosed is returned when the input stream ends before a usable
// scale factor was collected.
var ErrInputClosed = errors.New("input stream closed")

// Collector reads a scale factor from an input stream, re-prompting on
// invalid input and asking for confirmation above a threshold.
type Collector struct {
	in               io.Reader
	out              io.Writer
	defaultValue     int
	confirmThreshold int

	startOnce sync.Once
	lines     chan string
}

// NewCollector creates a collector reading from in and prompting on out.
func NewCollector(in io.Reader, out io.Writer, defaultValue, confirmThreshold int) *Collector {
	return &Collector{
		in:               in,
		out:              out,
		defaultValue:     defaultValue,
		confirmThreshold: confirmThreshold,
	}
}

// Collect prompts until a usable scale factor is obtained or the context
// is cancelled. Blank input yields the default. Values above the confirm
// threshold require an explicit "y" answer; any other answer returns to
// the main prompt.
func (c *Collector) Collect(ctx context.Context) (int, error) {
	c.printReference()

	for {
		fmt.Fprintf(c.out, "\nEnter TPC-DS scale factor (default: %d): ", c.defaultValue)

		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return c.defaultValue, nil
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a whole number.")
			continue
		}

		if value < 1 {
			fmt.Fprintln(c.out, "Scale factor must be positive. Please try again.")
			continue
		}

		if value > c.confirmThreshold {
			fmt.Fprintf(c.out, "Scale factor %d will generate roughly %d GB. Continue? (y/n): ", value, value)

			answer, err := c.readLine(ctx)
			if err != nil {
				return 0, err
			}
			if strings.EqualFold(strings.TrimSpace(answer), "y") {
				return value, nil
			}
			continue
		}

		return value, nil
	}
}

// printReference prints the banner with the scale factor reference table.
func (c *Collector) printReference() {
	sep := strings.Repeat("=", 70)

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, sep)
	fmt.Fprintln(c.out, "TPC-DS DATA GENERATOR")
	fmt.Fprintln(c.out, sep)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Scale Factor Reference:")
	fmt.Fprintln(c.out, "  1    = ~1 GB    (Development/Testing)")
	fmt.Fprintln(c.out, "  10   = ~10 GB   (Small benchmarks)")
	fmt.Fprintln(c.out, "  100  = ~100 GB  (Medium benchmarks)")
	fmt.Fprintln(c.out, "  1000 = ~1 TB    (Large benchmarks)")
	fmt.Fprintln(c.out, sep)
}

// readLine returns the next input line, or ErrCancelled if the context
// is done first. Lines are pumped through a channel so a blocking read
// on stdin cannot outlive an interrupt.
func (c *Collector) readLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrCancelled
	}

	c.startOnce.Do(func() {
		c.lines = make(chan string)
		go func() {
			defer close(c.lines)
			scanner := bufio.NewScanner(c.in)
			for scanner.Scan() {
				select {
				case c.lines <- scanner.Text():
				case <-ctx.Done():
					return
				}
			}
		}()
	})

	select {
	case <-ctx.Done():
		return "", ErrCancelled
	case line, ok := <-c.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return line, nil
	}
}
