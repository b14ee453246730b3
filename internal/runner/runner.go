package runner

import (
	"context"
	"runtime"
	"time"

	"github.com/bigip-labs/f5fetch/pkg/output"
	"github.com/bigip-labs/f5fetch/pkg/probe"
	"github.com/bigip-labs/f5fetch/pkg/targets"
	"github.com/projectdiscovery/gcache"
	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	mapsutil "github.com/projectdiscovery/utils/maps"
	syncutil "github.com/projectdiscovery/utils/sync"
	"github.com/rs/xid"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// seenCacheSize bounds the cross-source dedup cache; larger runs simply
// accept the odd re-probe once the LRU evicts.
const seenCacheSize = 65536

// Runner contains the internal logic of the program
type Runner struct {
	options   *Options
	prober    *probe.Prober
	sink      *output.Sink
	events    probe.Events
	endpoints []probe.Endpoint
	seen      gcache.Cache[string, struct{}]
	results   *mapsutil.SyncLockMap[string, *probe.Outcome]
	runID     string
}

// NewRunner instance
func NewRunner(options *Options) (*Runner, error) {
	mode, err := output.ParseMode(options.Output)
	if err != nil {
		return nil, err
	}

	events := probe.LogEvents{}
	prober := probe.New(probe.Options{
		Timeout:   time.Duration(options.Timeout) * time.Second,
		TLSVerify: options.TLSVerify,
		Credentials: probe.Credentials{
			Username: UsernameEnv,
			Password: PasswordEnv,
		},
		Events: events,
	})

	return &Runner{
		options:   options,
		prober:    prober,
		sink:      output.NewSink(mode, options.OutputDir, !options.NoColor),
		events:    events,
		endpoints: probe.DefaultEndpoints(),
		seen:      gcache.New[string, struct{}](seenCacheSize).LRU().Build(),
		results:   mapsutil.NewSyncLockMap[string, *probe.Outcome](),
		runID:     xid.New().String(),
	}, nil
}

// Run the instance
func (r *Runner) Run() error {
	gologger.Info().Msg("Running fetch against BIG-IP REST endpoints.")
	gologger.Info().Msgf("Options chosen: Timeout = %d seconds", r.options.Timeout)
	r.logHostInfo()

	awg, err := syncutil.New(syncutil.WithSize(workerCount()))
	if err != nil {
		return err
	}

	ctx := context.Background()
	var sourceErrs []error
	dispatched := 0

	if r.options.IPInput != "" {
		gologger.Info().Msgf("Fetching data for IP(s) from command line input: %s", r.options.IPInput)
		hosts, err := targets.FromInput(r.options.IPInput)
		if err != nil {
			gologger.Error().Msgf("%s", err)
			sourceErrs = append(sourceErrs, err)
		} else {
			for h := range hosts {
				if r.dispatch(ctx, awg, h) {
					dispatched++
				}
			}
		}
	}

	if r.options.IPFile != "" {
		hosts, err := targets.FromFile(r.options.IPFile)
		if err != nil {
			gologger.Error().Msgf("Could not read IP file %s: %s", r.options.IPFile, err)
			sourceErrs = append(sourceErrs, err)
		} else {
			gologger.Info().Msgf("Reading from file %s. Found %d IP addresses.", r.options.IPFile, len(hosts))
			for _, h := range hosts {
				if r.dispatch(ctx, awg, h) {
					dispatched++
				}
			}
		}
	}

	awg.Wait()

	r.logResults()

	// The run only fails outright when every supplied source broke before
	// producing a single target.
	if dispatched == 0 && len(sourceErrs) > 0 {
		return errorutil.NewWithErr(sourceErrs[0]).Msgf("no targets could be processed")
	}
	return nil
}

// Close the runner instance
func (r *Runner) Close() {
	r.seen.Purge()
}

// dispatch hands one host to the pool, skipping hosts already queued this
// run (the same device may appear in both input sources).
func (r *Runner) dispatch(ctx context.Context, awg *syncutil.AdaptiveWaitGroup, host string) bool {
	if r.seen.Has(host) {
		gologger.Verbose().Msgf("skipping duplicate host %s", host)
		return false
	}
	_ = r.seen.Set(host, struct{}{})

	awg.Add()
	go func() {
		defer awg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				gologger.Error().Msgf("panic while probing %s: %v", host, rec)
			}
		}()
		r.processHost(ctx, host)
	}()
	return true
}

// processHost runs the probe → emit pipeline for a single host.
func (r *Runner) processHost(ctx context.Context, host string) {
	if !r.sink.HasRecord(host) {
		r.events.NewDevice(host)
	}

	out, ok := r.prober.Probe(ctx, host, r.endpoints)
	if !ok {
		return
	}
	_ = r.results.Set(host, out)

	if err := r.sink.Emit(out); err != nil {
		gologger.Error().Msgf("Could not write result for %s: %s", host, err)
	}
}

func (r *Runner) logHostInfo() {
	info, err := host.Info()
	if err != nil {
		return
	}
	gologger.Verbose().Msgf("run %s on %s (%s/%s), %d workers", r.runID, info.Hostname, info.OS, info.KernelArch, workerCount())
}

func (r *Runner) logResults() {
	count := 0
	_ = r.results.Iterate(func(host string, out *probe.Outcome) error {
		count++
		gologger.Verbose().Msgf("%s answered on port %d (%d bytes)", host, out.Endpoint.Port, len(out.Payload))
		return nil
	})
	gologger.Verbose().Msgf("run %s complete: %d device(s) answered", r.runID, count)
}

// workerCount sizes the pool to the host's available parallelism.
func workerCount() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
