// Package advice combines the season and tip lookups into advice records.
package advice

import (
	"fmt"
	"time"

	"github.com/boozedog/smoovgarden/internal/calendar"
	"github.com/boozedog/smoovgarden/internal/tips"
	"github.com/jonboulle/clockwork"
)

// Advice is the gardening advice for one hemisphere on one day.
type Advice struct {
	MonthName      string          `json:"month" yaml:"month"`
	Month          int             `json:"month_number" yaml:"month_number"`
	EffectiveMonth int             `json:"effective_month" yaml:"effective_month"`
	Season         calendar.Season `json:"season" yaml:"season"`
	Tip            string          `json:"tip" yaml:"tip"`
	Hemisphere     string          `json:"hemisphere" yaml:"hemisphere"`
	Year           int             `json:"year" yaml:"year"`
}

// Resolver answers tip and advice queries from a fixed tip table.
type Resolver struct {
	tips  *tips.Table
	clock clockwork.Clock
}

// New creates a Resolver. A nil table means the built-in tips; a nil clock
// means the real clock.
func New(table *tips.Table, clock clockwork.Clock) *Resolver {
	if table == nil {
		table = tips.Fallback()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Resolver{tips: table, clock: clock}
}

// Tips returns the table the resolver reads from.
func (r *Resolver) Tips() *tips.Table {
	return r.tips
}

// Today returns the current date according to the resolver's clock.
func (r *Resolver) Today() time.Time {
	return r.clock.Now()
}

// TipFor returns the tip for month in hemisphere h. Months missing from the
// table get a placeholder naming the effective month.
func (r *Resolver) TipFor(month int, h calendar.Hemisphere) string {
	effective := calendar.AdjustMonth(month, h)
	if tip, ok := r.tips.Get(effective); ok {
		return tip
	}
	return fmt.Sprintf("No tip available for month %d (%s).", effective, calendar.MonthName(effective))
}

// MonthlyTip returns the tip for the current month.
func (r *Resolver) MonthlyTip(h calendar.Hemisphere) string {
	return r.TipFor(int(r.Today().Month()), h)
}

// CurrentSeason returns the season for the current month.
func (r *Resolver) CurrentSeason(h calendar.Hemisphere) calendar.Season {
	return calendar.SeasonFor(int(r.Today().Month()), h)
}

// Advice returns the advice record for today.
func (r *Resolver) Advice(h calendar.Hemisphere) Advice {
	return r.AdviceAt(r.Today(), h)
}

// AdviceAt returns the advice record for the given day.
func (r *Resolver) AdviceAt(day time.Time, h calendar.Hemisphere) Advice {
	month := int(day.Month())
	return Advice{
		MonthName:      day.Month().String(),
		Month:          month,
		EffectiveMonth: calendar.AdjustMonth(month, h),
		Season:         calendar.SeasonFor(month, h),
		Tip:            r.TipFor(month, h),
		Hemisphere:     h.Label(),
		Year:           day.Year(),
	}
}

// AdviceAll returns today's advice for every hemisphere, north first.
func (r *Resolver) AdviceAll() []Advice {
	today := r.Today()
	var out []Advice
	for _, h := range calendar.Hemispheres() {
		out = append(out, r.AdviceAt(today, h))
	}
	return out
}
