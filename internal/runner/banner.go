package runner

import "github.com/projectdiscovery/gologger"

var banner = `
   ____   ____     __       __       __
  / __/  / __/    / _| ___ | |_  ___| |__
 / _/   /__ \    | |_ / _ \| __|/ __| '_ \
/_/    /____/    |  _|  __/| |_| (__| | | |
                 |_|  \___| \__|\___|_| |_|
`

const version = "v0.2.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tgithub.com/bigip-labs\n\n")
}
