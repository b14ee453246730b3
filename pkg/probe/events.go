package probe

import (
	"github.com/projectdiscovery/gologger"
)

// Events receives probe activity. The default implementation logs through
// gologger; tests substitute a recording sink.
type Events interface {
	Outcome(out *Outcome)
	NewDevice(host string)
}

// LogEvents logs probe activity in the tool's console format.
type LogEvents struct{}

func (LogEvents) Outcome(out *Outcome) {
	switch out.Kind {
	case OutcomeSuccess:
		gologger.Info().Msgf("Success: %s on port %d", out.Host, out.Endpoint.Port)
	case OutcomeHTTPFailure:
		gologger.Warning().Msgf("Failed: %s on port %d (HTTP %d)", out.Host, out.Endpoint.Port, out.StatusCode)
	case OutcomeTimeout:
		gologger.Warning().Msgf("Timeout: %s on port %d", out.Host, out.Endpoint.Port)
	case OutcomeBadPayload:
		gologger.Warning().Msgf("Invalid response: %s on port %d: %s", out.Host, out.Endpoint.Port, out.Err)
	default:
		gologger.Warning().Msgf("Error: %s on port %d", out.Host, out.Endpoint.Port)
		gologger.Verbose().Msgf("%s port %d: %s", out.Host, out.Endpoint.Port, out.Err)
	}
}

func (LogEvents) NewDevice(host string) {
	gologger.Info().Msgf("New device detected: %s", host)
}
