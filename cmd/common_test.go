package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/astrokit/unitconv/config"
	"github.com/astrokit/unitconv/log"
)

func TestParseQuantity(t *testing.T) {
	var tests = []struct {
		s    string
		v    float64
		unit string
		fail bool
	}{
		{"4552@A", 4552, "A", false},
		{"2@micron", 2, "micron", false},
		{"-1.5e3@km/s", -1500, "km/s", false},
		{"4552", 0, "", true},
		{"abc@A", 0, "", true},
		{"@A", 0, "", true},
	}
	for _, tt := range tests {
		v, unit, err := parseQuantity(tt.s)
		if tt.fail {
			if err == nil {
				t.Errorf("%q: Wanted error, got (%v, %q)", tt.s, v, unit)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.s, err)
			continue
		}
		if v != tt.v || unit != tt.unit {
			t.Errorf("%q: Wanted (%v, %q), got (%v, %q)", tt.s, tt.v, tt.unit, v, unit)
		}
	}
}

func TestParseRequest(t *testing.T) {
	req, err := parseRequest("4553 A km/s wave=4552@A")
	if err != nil {
		t.Fatal(err)
	}
	if req.value != 4553 || req.from != "A" || req.to != "km/s" || len(req.opts) != 1 {
		t.Errorf("Wanted (4553, A, km/s, 1 option), got (%v, %s, %s, %d options)",
			req.value, req.from, req.to, len(req.opts))
	}

	var fails = []string{
		"4553 A",
		"abc A km/s",
		"4553 A km/s wave",
		"4553 A km/s ref=4552@A",
		"4553 A km/s wave=4552",
	}
	for _, line := range fails {
		if _, err := parseRequest(line); err == nil {
			t.Errorf("%q: Wanted error, got nil", line)
		}
	}
}

func TestLevelFlag(t *testing.T) {
	var f levelFlag
	if f.set {
		t.Error("Wanted unset flag before Set")
	}
	if err := f.Set("warn"); err != nil {
		t.Fatal(err)
	}
	if !f.set {
		t.Error("Wanted set flag after Set")
	}
	if want, got := "WARN", f.String(); got != want {
		t.Errorf("Wanted %q, got %q", want, got)
	}
	if err := f.Set("not-a-level"); err == nil {
		t.Error("Wanted error for bad level, got nil")
	}
}

// The config's output target directs log records to a file.
func TestSetLogHandlerOutput(t *testing.T) {
	t.Cleanup(func() {
		LogLevel = levelFlag{}
		log.SetTextHandler(os.Stderr)
		log.SetLogLevel(log.LevelInfo)
	})

	path := filepath.Join(t.TempDir(), "unitconv.log")
	cfg := &config.Config{
		Log: config.LogConfig{Level: log.LevelDebug, Output: path},
	}
	setLogHandler(cfg)

	log.Info("converted", "from", "km", "to", "cm")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "converted") {
		t.Errorf("Wanted log record in %s, got %q", path, data)
	}
}

// The --log flag wins over the config file's level.
func TestSetLogHandlerFlag(t *testing.T) {
	t.Cleanup(func() {
		LogLevel = levelFlag{}
		log.SetTextHandler(os.Stderr)
		log.SetLogLevel(log.LevelInfo)
	})

	if err := LogLevel.Set("error"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "unitconv.log")
	cfg := &config.Config{
		Log: config.LogConfig{Level: log.LevelDebug, Output: path},
	}
	setLogHandler(cfg)

	log.Debug("hidden")
	log.Error("shown", nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Errorf("Wanted debug record suppressed, got %q", data)
	}
	if !strings.Contains(string(data), "shown") {
		t.Errorf("Wanted error record in %s, got %q", path, data)
	}
}

func TestFormatResult(t *testing.T) {
	var tests = []struct {
		v    float64
		want string
	}{
		{100000, "100000"},
		{1e7, "1e+07"},
		{0.25, "0.25"},
		{1e-26, "1e-26"},
	}
	for _, tt := range tests {
		if got := formatResult(tt.v); got != tt.want {
			t.Errorf("%v: Wanted %q, got %q", tt.v, tt.want, got)
		}
	}
}
