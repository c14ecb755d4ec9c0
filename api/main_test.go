package api_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/fx"

	"github.com/tidepool-org/clinic-reports/api"
)

var _ = Describe("Dependencies", func() {
	It("provides everything the service needs", func() {
		opts := append(api.Dependencies(), fx.Invoke(api.SetReady), fx.Invoke(api.Start))
		Expect(fx.ValidateApp(opts...)).To(Succeed())
	})
})
