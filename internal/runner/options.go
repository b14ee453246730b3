package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	envutil "github.com/projectdiscovery/utils/env"
)

var (
	// Device credentials default to the factory pair. Known weakness kept
	// on purpose: these boxes ship with admin/admin and the tool targets
	// lab inventories.
	UsernameEnv = envutil.GetEnvOrDefault("F5FETCH_USERNAME", "admin")
	PasswordEnv = envutil.GetEnvOrDefault("F5FETCH_PASSWORD", "admin")
)

// Options contains the configuration options for a fetch run.
type Options struct {
	IPInput   string
	IPFile    string
	Timeout   int
	TLSVerify bool
	Output    string
	OutputDir string

	Verbose bool
	Silent  bool
	NoColor bool
	Version bool
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`f5fetch probes F5 BIG-IP devices over their REST endpoints, based on an IP address, network range or host file, and saves the first response it finds per device.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&options.IPInput, "ip-input", "ii", "", "single IPv4 address or range in CIDR format (e.g., 192.168.1.0/24)"),
		flagSet.StringVarP(&options.IPFile, "ip-file", "if", "", "text file containing a list of addresses, one per line"),
	)

	flagSet.CreateGroup("probe", "Probe",
		flagSet.IntVar(&options.Timeout, "timeout", 3, "timeout for each API request in seconds"),
		flagSet.BoolVarP(&options.TLSVerify, "tls-verify", "tv", false, "verify TLS certificates of probed devices"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&options.Output, "output", "o", "stdout", "result destination (file or stdout)"),
		flagSet.StringVarP(&options.OutputDir, "output-dir", "od", ".", "directory for per-device response files"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only results in output"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
	)

	// No arguments at all prints usage and exits cleanly.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "-h")
	}

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version)
		os.Exit(0)
	}

	return options
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}
