package probe

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// Credentials is the basic-auth pair sent with every request.
type Credentials struct {
	Username string
	Password string
}

// Options configures a Prober.
type Options struct {
	Timeout     time.Duration
	TLSVerify   bool
	Credentials Credentials
	Events      Events
}

// Prober tries endpoints against a single host, stopping at the first
// success. It holds one HTTP client shared across hosts.
type Prober struct {
	client *http.Client
	creds  Credentials
	events Events
}

// New creates a Prober. TLS certificate verification is skipped unless
// explicitly enabled, matching the devices' self-signed defaults.
func New(opts Options) *Prober {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !opts.TLSVerify,
		},
	}
	events := opts.Events
	if events == nil {
		events = LogEvents{}
	}
	return &Prober{
		client: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		creds:  opts.Credentials,
		events: events,
	}
}

// Probe tries the endpoints in declared order and returns the first
// successful outcome. Every attempt, failed or not, is reported to the
// events sink. The second return is false when no endpoint succeeded.
func (p *Prober) Probe(ctx context.Context, host string, endpoints []Endpoint) (*Outcome, bool) {
	for i := range endpoints {
		out := p.attempt(ctx, host, &endpoints[i])
		p.events.Outcome(out)
		if out.Kind == OutcomeSuccess {
			return out, true
		}
	}
	return nil, false
}

func (p *Prober) attempt(ctx context.Context, host string, endpoint *Endpoint) *Outcome {
	out := &Outcome{Host: host, Endpoint: endpoint}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.URL(host), nil)
	if err != nil {
		out.Kind = OutcomeTransportError
		out.Err = err
		return out
	}
	for k, v := range endpoint.Headers {
		req.Header.Set(k, v)
	}
	req.SetBasicAuth(p.creds.Username, p.creds.Password)

	resp, err := p.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			out.Kind = OutcomeTimeout
		} else {
			out.Kind = OutcomeTransportError
		}
		out.Err = err
		return out
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	out.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		out.Kind = OutcomeHTTPFailure
		_, _ = io.Copy(io.Discard, resp.Body)
		return out
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		out.Kind = OutcomeTransportError
		out.Err = err
		return out
	}
	if !gjson.ValidBytes(body) {
		out.Kind = OutcomeBadPayload
		out.Err = errors.New("response body is not valid JSON")
		return out
	}

	out.Kind = OutcomeSuccess
	out.Payload = body
	return out
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
