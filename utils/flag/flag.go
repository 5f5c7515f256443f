package flag

import (
	"flag"
)

var (
	// ServiceName tags log lines so multiple binaries built from this
	// repo can be told apart in shared output.
	ServiceName = flag.String("service", "api_server", "name of the service to run")
)

func ParseFlags() {
	flag.Parse()
}
