package logins

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mordilloSan/go-logger/logger"
)

func TestMain(m *testing.M) {
	logger.Init(logger.Config{Levels: []logger.Level{logger.ErrorLevel}})
	os.Exit(m.Run())
}

const lastOutput = `alice    pts/0        192.168.1.10     Mon Aug 11 09:15   still logged in
alice    pts/1        192.168.1.10     Sun Aug 10 22:04 - 23:30  (01:25)
bob      tty1         0.0.0.0          Sat Aug  9 08:00 - 08:45  (00:45)
reboot   system boot  6.8.0-40-generic Fri Aug  8 07:58   still running

wtmp begins Fri Aug  8 07:58:11 2025
`

func TestLastLogin(t *testing.T) {
	h := Parse(lastOutput)

	if got := h.LastLogin("alice"); got != "Mon Aug 11 09:15" {
		t.Errorf("expected first alice row, got %q", got)
	}
	if got := h.LastLogin("bob"); got != "Sat Aug 9 08:00" {
		t.Errorf("unexpected bob login: %q", got)
	}
	if got := h.LastLogin("carol"); got != NoneFound {
		t.Errorf("expected %q for unknown name, got %q", NoneFound, got)
	}
}

// The trailer line has 7 fields, so it is indexed like any other row under
// the name "wtmp".
func TestLastLoginTrailerLine(t *testing.T) {
	h := Parse(lastOutput)

	if got := h.LastLogin("wtmp"); got != "Aug 8 07:58:11 2025" {
		t.Errorf("unexpected trailer lookup: %q", got)
	}
}

func TestParseDropsShortRows(t *testing.T) {
	h := Parse("dana pts/3 host Mon Aug 11\n")

	if got := h.LastLogin("dana"); got != NoneFound {
		t.Errorf("expected short row to be dropped, got %q", got)
	}
}

func TestBuildUsesQueryOutput(t *testing.T) {
	var gotPath string
	query := func(ctx context.Context, wtmpFile string) ([]byte, error) {
		gotPath = wtmpFile
		return []byte(lastOutput), nil
	}

	h := Build(context.Background(), query, "/var/log/wtmp")

	if gotPath != "/var/log/wtmp" {
		t.Errorf("expected query to receive wtmp path, got %q", gotPath)
	}
	if got := h.LastLogin("alice"); got != "Mon Aug 11 09:15" {
		t.Errorf("unexpected lookup: %q", got)
	}
}

func TestBuildDegradesOnQueryFailure(t *testing.T) {
	query := func(ctx context.Context, wtmpFile string) ([]byte, error) {
		return nil, fmt.Errorf("last: command not found")
	}

	h := Build(context.Background(), query, "/var/log/wtmp")

	if got := h.LastLogin("alice"); got != NoneFound {
		t.Errorf("expected degraded history to return %q, got %q", NoneFound, got)
	}
}

func TestCommandAppendsWtmpPath(t *testing.T) {
	query := Command([]string{"echo", "ran"}, 5*time.Second)

	out, err := query(context.Background(), "/var/log/wtmp")
	if err != nil {
		t.Fatalf("echo query failed: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "ran /var/log/wtmp" {
		t.Errorf("unexpected command output: %q", got)
	}
}

func TestCommandTimeout(t *testing.T) {
	// the wtmp path lands in $0, leaving the sleep undisturbed
	query := Command([]string{"sh", "-c", "sleep 5"}, 50*time.Millisecond)

	if _, err := query(context.Background(), "ignored"); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestCommandEmptyArgv(t *testing.T) {
	query := Command(nil, time.Second)

	if _, err := query(context.Background(), "ignored"); err == nil {
		t.Fatal("expected error for empty command")
	}
}
