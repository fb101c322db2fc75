// Package logins builds a login-history index from the output of last.
package logins

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/mordilloSan/go-logger/logger"
)

// NoneFound is the lookup result for accounts with no recorded login.
const NoneFound = "None found"

// QueryFunc produces raw login-history output for a wtmp file.
type QueryFunc func(ctx context.Context, wtmpFile string) ([]byte, error)

// Command returns a QueryFunc that runs argv with the wtmp path appended,
// bounded by timeout.
func Command(argv []string, timeout time.Duration) QueryFunc {
	return func(ctx context.Context, wtmpFile string) ([]byte, error) {
		if len(argv) == 0 {
			return nil, fmt.Errorf("no login history command configured")
		}

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		args := append(append([]string{}, argv[1:]...), wtmpFile)
		return exec.CommandContext(ctx, argv[0], args...).Output()
	}
}

// History indexes login-history rows for lookup by account name.
type History struct {
	rows [][]string
}

// Build runs the query and indexes its output. A failed query is not fatal:
// it logs one warning and returns an empty history, so every lookup reports
// NoneFound.
func Build(ctx context.Context, query QueryFunc, wtmpFile string) *History {
	out, err := query(ctx, wtmpFile)
	if err != nil {
		logger.Warnf("login history unavailable (%s): %v", wtmpFile, err)
		return &History{}
	}

	return Parse(string(out))
}

// Parse splits raw last output into whitespace-separated rows, preserving
// order. Rows with fewer than 7 fields are dropped.
func Parse(out string) *History {
	h := &History{}
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 7 {
			continue
		}
		h.rows = append(h.rows, fields)
	}

	return h
}

// LastLogin returns the login timestamp from the first row recorded for
// name, or NoneFound when no row matches.
func (h *History) LastLogin(name string) string {
	for _, row := range h.rows {
		if row[0] == name {
			return strings.Join(row[3:7], " ")
		}
	}

	return NoneFound
}
