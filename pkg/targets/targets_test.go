package targets

import (
	"os"
	"path/filepath"
	"testing"
)

func collect(ch <-chan string) []string {
	var hosts []string
	for h := range ch {
		hosts = append(hosts, h)
	}
	return hosts
}

func TestFromInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "single address",
			input: "192.168.1.5",
			want:  []string{"192.168.1.5"},
		},
		{
			name:  "/30 range excludes network and broadcast",
			input: "10.0.0.0/30",
			want:  []string{"10.0.0.1", "10.0.0.2"},
		},
		{
			name:  "host bits set are masked off",
			input: "10.0.0.5/30",
			want:  []string{"10.0.0.5", "10.0.0.6"},
		},
		{
			name:  "/32 has no usable hosts",
			input: "192.168.1.1/32",
			want:  nil,
		},
		{
			name:    "garbage input",
			input:   "not-an-ip",
			wantErr: true,
		},
		{
			name:    "out of range octet",
			input:   "999.1.1.1",
			wantErr: true,
		},
		{
			name:    "IPv6 address",
			input:   "2001:db8::1",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := FromInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			got := collect(ch)
			if len(got) != len(tt.want) {
				t.Fatalf("FromInput() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("FromInput()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFromInputLargeRange(t *testing.T) {
	ch, err := FromInput("10.1.2.0/24")
	if err != nil {
		t.Fatalf("FromInput() error = %v", err)
	}

	seen := make(map[string]struct{})
	for host := range ch {
		if host == "10.1.2.0" || host == "10.1.2.255" {
			t.Errorf("network/broadcast address %s should be excluded", host)
		}
		if _, dup := seen[host]; dup {
			t.Errorf("duplicate host %s", host)
		}
		seen[host] = struct{}{}
	}

	if len(seen) != 254 {
		t.Errorf("expected 254 usable hosts, got %d", len(seen))
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts.txt")
	content := "10.0.0.1\n\n  10.0.0.2  \n10.0.0.1\nbigip-lab.example.local\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	hosts, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}

	want := []string{"10.0.0.1", "10.0.0.2", "bigip-lab.example.local"}
	if len(hosts) != len(want) {
		t.Fatalf("FromFile() = %v, want %v", hosts, want)
	}
	for i := range want {
		if hosts[i] != want[i] {
			t.Errorf("FromFile()[%d] = %s, want %s", i, hosts[i], want[i])
		}
	}
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
