package main

import (
	"github.com/tidepool-org/clinic-reports/cmd/reports/command"
)

func main() {
	command.Execute()
}
