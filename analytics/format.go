package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultDayLabelLayout  = "Jan 2"
	DefaultWeekLabelLayout = "Jan 2"
)

// FormattingConfig controls how labels and amounts are rendered for humans. It never
// affects the numeric values in a report.
type FormattingConfig struct {
	Currency        currency.Unit
	Language        language.Tag
	Location        *time.Location
	DayLabelLayout  string
	WeekLabelLayout string
}

func DefaultFormattingConfig() FormattingConfig {
	return FormattingConfig{
		Currency:        currency.USD,
		Language:        language.AmericanEnglish,
		Location:        time.UTC,
		DayLabelLayout:  DefaultDayLabelLayout,
		WeekLabelLayout: DefaultWeekLabelLayout,
	}
}

func NewFormattingConfig(currencyCode string, locale string, loc *time.Location) (FormattingConfig, error) {
	f := DefaultFormattingConfig()
	if currencyCode != "" {
		unit, err := currency.ParseISO(currencyCode)
		if err != nil {
			return f, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
		}
		f.Currency = unit
	}
	if locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			return f, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		f.Language = tag
	}
	if loc != nil {
		f.Location = loc
	}
	return f, nil
}

func (f FormattingConfig) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

func (f FormattingConfig) dayLayout() string {
	if f.DayLabelLayout == "" {
		return DefaultDayLabelLayout
	}
	return f.DayLabelLayout
}

func (f FormattingConfig) weekLayout() string {
	if f.WeekLabelLayout == "" {
		return DefaultWeekLabelLayout
	}
	return f.WeekLabelLayout
}

func (f FormattingConfig) FormatAmount(amount decimal.Decimal) string {
	p := message.NewPrinter(f.Language)
	return p.Sprint(currency.Symbol(f.Currency.Amount(amount.InexactFloat64())))
}

func (f FormattingConfig) FormatPercent(value float64) string {
	p := message.NewPrinter(f.Language)
	return p.Sprintf("%.1f%%", value)
}

func (f FormattingConfig) FormatCount(value int) string {
	p := message.NewPrinter(f.Language)
	return p.Sprintf("%d", value)
}

func (f FormattingConfig) DayLabel(t time.Time) string {
	return t.In(f.location()).Format(f.dayLayout())
}

func (f FormattingConfig) WeekLabel(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.In(f.location()).Format(f.weekLayout()), end.In(f.location()).Format(f.weekLayout()))
}
