// Package output delivers successful probe payloads either to per-device
// YAML files or to the console.
package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bigip-labs/f5fetch/pkg/probe"
	"github.com/logrusorgru/aurora/v4"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
	"gopkg.in/yaml.v3"
)

// Mode selects the result destination.
type Mode string

const (
	ModeStdout Mode = "stdout"
	ModeFile   Mode = "file"
)

// ParseMode validates a user-supplied output mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeStdout, ModeFile:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown output mode %q (expected file or stdout)", s)
	}
}

// Sink writes successful payloads. Each host writes to a distinct file so
// concurrent emissions never contend.
type Sink struct {
	mode Mode
	dir  string
	au   *aurora.Aurora
}

// NewSink creates a Sink writing files under dir in file mode.
func NewSink(mode Mode, dir string, colors bool) *Sink {
	return &Sink{
		mode: mode,
		dir:  dir,
		au:   aurora.New(aurora.WithColors(colors)),
	}
}

// RecordPath returns the persisted record location for a host.
func (s *Sink) RecordPath(host string) string {
	return filepath.Join(s.dir, fmt.Sprintf("response_%s.yaml", host))
}

// HasRecord reports whether a persisted record already exists for the host.
func (s *Sink) HasRecord(host string) bool {
	return fileutil.FileExists(s.RecordPath(host))
}

// Emit delivers one successful outcome. In file mode the payload replaces
// any prior record for the host; in stdout mode it is printed framed with
// the host identifier and the answering port.
func (s *Sink) Emit(out *probe.Outcome) error {
	data, err := toYAML(out.Payload)
	if err != nil {
		return fmt.Errorf("could not serialize response for %s: %w", out.Host, err)
	}

	switch s.mode {
	case ModeFile:
		return os.WriteFile(s.RecordPath(out.Host), data, 0644)
	default:
		header := fmt.Sprintf("── %s (port %d)", out.Host, out.Endpoint.Port)
		gologger.Silent().Msgf("%s\n%s", s.au.Cyan(header).String(), data)
		return nil
	}
}

// toYAML re-encodes a JSON document as indented YAML. JSON is a subset of
// YAML, so the decode side needs no separate parser.
func toYAML(payload []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
