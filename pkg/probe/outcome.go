package probe

// OutcomeKind classifies the result of one endpoint attempt.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeHTTPFailure
	OutcomeTimeout
	OutcomeTransportError
	OutcomeBadPayload
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeHTTPFailure:
		return "http-failure"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeTransportError:
		return "transport-error"
	case OutcomeBadPayload:
		return "bad-payload"
	default:
		return "unknown"
	}
}

// Outcome is the result of one (host, endpoint) attempt. Payload is set only
// for OutcomeSuccess and holds the raw JSON body.
type Outcome struct {
	Host       string
	Endpoint   *Endpoint
	Kind       OutcomeKind
	StatusCode int
	Payload    []byte
	Err        error
}
