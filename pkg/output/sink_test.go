package output

import (
	"os"
	"strings"
	"testing"

	"github.com/bigip-labs/f5fetch/pkg/probe"
)

func successOutcome(host string, payload string) *probe.Outcome {
	return &probe.Outcome{
		Host:     host,
		Endpoint: &probe.Endpoint{Port: 443},
		Kind:     probe.OutcomeSuccess,
		Payload:  []byte(payload),
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "stdout", want: ModeStdout},
		{input: "file", want: ModeFile},
		{input: "csv", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMode(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestEmitFileMode(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(ModeFile, dir, false)

	if sink.HasRecord("10.0.0.1") {
		t.Fatal("record should not exist before emission")
	}

	if err := sink.Emit(successOutcome("10.0.0.1", `{"hw":"ok"}`)); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	if !sink.HasRecord("10.0.0.1") {
		t.Fatal("record should exist after emission")
	}

	data, err := os.ReadFile(sink.RecordPath("10.0.0.1"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hw: ok") {
		t.Errorf("record content = %q, want YAML with 'hw: ok'", data)
	}
}

func TestEmitFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(ModeFile, dir, false)

	if err := sink.Emit(successOutcome("10.0.0.2", `{"hw":"ok"}`)); err != nil {
		t.Fatal(err)
	}
	if err := sink.Emit(successOutcome("10.0.0.2", `{"hw":"degraded"}`)); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(sink.RecordPath("10.0.0.2"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "hw: degraded") {
		t.Errorf("record content = %q, want latest payload", content)
	}
	if strings.Contains(content, "hw: ok") {
		t.Errorf("record content = %q, prior payload should be gone", content)
	}
}

func TestEmitNestedPayload(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(ModeFile, dir, false)

	payload := `{"components":{"component":[{"name":"blade-1","state":{"health":"healthy"}}]}}`
	if err := sink.Emit(successOutcome("10.0.0.3", payload)); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(sink.RecordPath("10.0.0.3"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, want := range []string{"components:", "name: blade-1", "health: healthy"} {
		if !strings.Contains(content, want) {
			t.Errorf("record content missing %q:\n%s", want, content)
		}
	}
}

func TestEmitStdoutMode(t *testing.T) {
	sink := NewSink(ModeStdout, "", false)
	if err := sink.Emit(successOutcome("10.0.0.4", `{"hw":"ok"}`)); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
}
