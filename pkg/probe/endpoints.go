package probe

import "fmt"

// Endpoint describes one REST path/port/header combination to try against a
// device. The URL template carries a single substitution slot for the host.
type Endpoint struct {
	Template string
	Headers  map[string]string
	Port     int
}

// URL substitutes host into the endpoint template.
func (e *Endpoint) URL(host string) string {
	return fmt.Sprintf(e.Template, host)
}

// DefaultEndpoints returns the compiled-in endpoint list in trial order:
// the rSeries/VELOS restconf health summary first, then the classic
// iControl hardware endpoint.
func DefaultEndpoints() []Endpoint {
	return []Endpoint{
		{
			Template: "https://%s:8888/restconf/data/openconfig-system:system/f5-system-health:health/f5-system-health:summary/f5-system-health:components",
			Headers:  map[string]string{"Content-Type": "application/yang-data+json"},
			Port:     8888,
		},
		{
			Template: "https://%s:443/mgmt/tm/sys/hardware",
			Headers:  map[string]string{"Content-Type": "application/json"},
			Port:     443,
		},
	}
}
