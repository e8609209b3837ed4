// Package termwidth reports how many columns of the host terminal a
// layout may use. The terminal is probed once per process and the
// result is memoized.
//
// The usable width is one less than the reported width: some terminals
// wrap when the last column is written.
package termwidth

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"golang.org/x/term"

	"github.com/wesen/textscreen/internal/log"
)

// Fallback is the terminal width assumed when no probe succeeds.
const Fallback = 120

// Probe returns the terminal width in columns.
type Probe func() (int, error)

// Stdout asks the terminal attached to stdout for its size.
func Stdout() (int, error) {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, nil
}

// Env reads the COLUMNS environment variable.
func Env() (int, error) {
	v := os.Getenv("COLUMNS")
	if v == "" {
		return 0, errors.New("COLUMNS not set")
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing COLUMNS %q: %w", v, err)
	}
	return n, nil
}

// Chain tries each probe in order and returns the first positive width.
func Chain(probes ...Probe) Probe {
	return func() (int, error) {
		var errs []error
		for _, p := range probes {
			n, err := p()
			if err == nil && n > 0 {
				return n, nil
			}
			if err == nil {
				err = fmt.Errorf("non-positive width %d", n)
			}
			errs = append(errs, err)
		}
		return 0, errors.Join(errs...)
	}
}

// Cache memoizes the usable width produced by a Probe.
type Cache struct {
	once  sync.Once
	probe Probe
	cols  int
}

// NewCache creates a Cache around probe. A nil probe always falls back.
func NewCache(probe Probe) *Cache {
	return &Cache{probe: probe}
}

// Columns returns the usable column count, probing on first use.
func (c *Cache) Columns() int {
	c.once.Do(func() {
		w := Fallback
		if c.probe != nil {
			n, err := c.probe()
			if err != nil || n <= 0 {
				log.Debug("terminal width unavailable (%v), using %d", err, Fallback)
			} else {
				w = n
			}
		}
		c.cols = w - 1
	})
	return c.cols
}

// Set pins the usable column count, bypassing the probe.
func (c *Cache) Set(cols int) {
	c.once.Do(func() {})
	c.cols = cols
}

var std = NewCache(Chain(Stdout, Env))

// Columns returns the process-wide usable column count.
func Columns() int { return std.Columns() }

// Set pins the process-wide usable column count.
func Set(cols int) { std.Set(cols) }
