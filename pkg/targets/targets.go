// Package targets expands user-supplied input (single IPv4 address, CIDR
// range, newline-delimited host file) into a deduplicated sequence of host
// identifiers.
package targets

import (
	"errors"
	"net"
	"strings"

	"github.com/projectdiscovery/mapcidr"
	fileutil "github.com/projectdiscovery/utils/file"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// ErrInvalidInput is returned when input parses as neither an IPv4 address
// nor a CIDR range.
var ErrInvalidInput = errors.New("invalid IP or IP range provided")

// FromInput expands a single IPv4 address or CIDR range into a streamed
// sequence of host identifiers. CIDR ranges are expanded lazily and exclude
// the network and broadcast addresses, so large blocks never sit in memory
// at once.
func FromInput(input string) (<-chan string, error) {
	if ip := net.ParseIP(input); ip != nil && ip.To4() != nil {
		out := make(chan string, 1)
		out <- ip.String()
		close(out)
		return out, nil
	}

	_, network, err := net.ParseCIDR(input)
	if err != nil {
		return nil, ErrInvalidInput
	}

	stream, err := mapcidr.IPAddressesAsStream(network.String())
	if err != nil {
		return nil, ErrInvalidInput
	}

	out := make(chan string)
	go func() {
		defer close(out)
		for addr := range stream {
			ip := net.ParseIP(addr)
			if ip == nil || isNetworkOrBroadcast(ip, network) {
				continue
			}
			out <- addr
		}
	}()
	return out, nil
}

// FromFile reads host identifiers from a newline-delimited file. Lines are
// taken verbatim after trimming whitespace; empty lines are skipped and
// duplicates removed preserving first-seen order. No per-line validation
// happens here, bad entries surface as probe failures.
func FromFile(path string) ([]string, error) {
	lines, err := fileutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var hosts []string
	for line := range lines {
		host := strings.TrimSpace(line)
		if host == "" {
			continue
		}
		hosts = append(hosts, host)
	}
	return sliceutil.Dedupe(hosts), nil
}
