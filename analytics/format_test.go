package analytics_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/tidepool-org/clinic-reports/analytics"
)

var _ = Describe("FormattingConfig", func() {
	It("is built from configuration values", func() {
		loc := time.FixedZone("EST", -5*60*60)
		f, err := analytics.NewFormattingConfig("EUR", "de-DE", loc)
		Expect(err).ToNot(HaveOccurred())
		Expect(f.Currency).To(Equal(currency.EUR))
		Expect(f.Language).To(Equal(language.MustParse("de-DE")))
		Expect(f.Location).To(Equal(loc))
	})

	It("keeps the defaults for empty values", func() {
		f, err := analytics.NewFormattingConfig("", "", nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(f).To(Equal(analytics.DefaultFormattingConfig()))
	})

	It("rejects unknown currencies and locales", func() {
		_, err := analytics.NewFormattingConfig("XYZW", "", nil)
		Expect(err).To(HaveOccurred())
		_, err = analytics.NewFormattingConfig("", "not a locale!", nil)
		Expect(err).To(HaveOccurred())
	})

	It("formats amounts with the currency symbol", func() {
		f := analytics.DefaultFormattingConfig()
		formatted := f.FormatAmount(decimal.RequireFromString("1234.5"))
		Expect(formatted).To(ContainSubstring("$"))
		Expect(formatted).To(ContainSubstring(".50"))
	})

	It("formats counts and percentages", func() {
		f := analytics.DefaultFormattingConfig()
		Expect(f.FormatCount(1234567)).To(Equal("1,234,567"))
		Expect(f.FormatPercent(33.333)).To(Equal("33.3%"))
	})

	It("labels days in the configured location", func() {
		f := analytics.DefaultFormattingConfig()
		f.Location = time.FixedZone("UTC-5", -5*60*60)
		Expect(f.DayLabel(time.Date(2024, time.March, 2, 3, 0, 0, 0, time.UTC))).To(Equal("Mar 1"))
		Expect(f.WeekLabel(time.Date(2024, time.March, 2, 12, 0, 0, 0, time.UTC), time.Date(2024, time.March, 8, 12, 0, 0, 0, time.UTC))).To(Equal("Mar 2 - Mar 8"))
	})
})
