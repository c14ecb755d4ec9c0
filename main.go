package main

import (
	"github.com/tidepool-org/clinic-reports/api"
)

func main() {
	api.MainLoop()
}
