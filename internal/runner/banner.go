package runner

import (
	"github.com/projectdiscovery/gologger"
)

const banner = `
                       __           __           __
   _______  __  __ __ / /____ _____/ /___ ______/ /_
  / ___/ /_/ / / / __/ _ \/ ___/ / __ _/ ___/ __ \
 / /  \___/\_,_/\__/\___/\__/ /_/\_,_/___ /_/ /_/
/_/                                              v0.0.1
`

// Version is the current version
const Version = `0.0.1`

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}
