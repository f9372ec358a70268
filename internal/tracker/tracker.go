package tracker

import (
	"time"

	"github.com/javiermolinar/lifegrid/internal/grid"
	"github.com/javiermolinar/lifegrid/internal/logger"
	"github.com/javiermolinar/lifegrid/internal/schedule"
)

// Snapshot is the derived state computed by one tick.
type Snapshot struct {
	Now         time.Time
	Current     Current
	HasCurrent  bool // a row is marked current
	DayProgress int
	Sleeping    bool
	MinutePass  bool // the header and flap pass ran this tick
}

// state holds the caches reused between ticks.
type state struct {
	headers []*grid.Header
	rows    []*grid.Row
	sorted  []schedule.TimeSlot
	valid   bool

	active     *grid.Row
	lastMinute int64
}

// Tracker drives the live decorations on a grid surface.
type Tracker struct {
	window  Window
	surface *grid.Surface
	st      state
	peeking bool
}

// New creates a tracker bound to surface.
func New(surface *grid.Surface, window Window) *Tracker {
	return &Tracker{
		window:  window,
		surface: surface,
		st:      state{lastMinute: -1},
	}
}

// Window returns the configured awake window.
func (t *Tracker) Window() Window {
	return t.window
}

// Invalidate drops the row and slot caches. Call after inserting or removing a row.
func (t *Tracker) Invalidate() {
	t.st.valid = false
	t.st.rows = nil
	t.st.sorted = nil
	t.st.headers = nil
	// Force the minute pass so new rows pick up the current flap state.
	t.st.lastMinute = -1
}

func (t *Tracker) ensureCache() {
	if t.st.valid {
		return
	}
	t.st.rows = t.surface.Rows()
	t.st.sorted = make([]schedule.TimeSlot, len(t.st.rows))
	for i, r := range t.st.rows {
		t.st.sorted[i] = r.Slot
	}
	schedule.SortSlots(t.st.sorted)
	t.st.headers = t.surface.Headers()
	t.st.valid = true
	logger.Debug("tracker cache rebuilt", "rows", len(t.st.rows))
}

// rowFor looks up a cached row by slot. Detached rows count as missing.
func (t *Tracker) rowFor(slot schedule.TimeSlot) *grid.Row {
	for _, r := range t.st.rows {
		if r.Slot == slot && !r.Detached() {
			return r
		}
	}
	return nil
}

// Active returns the row currently marked current, or nil.
func (t *Tracker) Active() *grid.Row {
	return t.st.active
}

// Tick runs one update. The current row is refreshed every tick; the header,
// flap and sleep pass runs on the first tick and whenever the minute changes.
func (t *Tracker) Tick(now time.Time) Snapshot {
	snap := t.UpdateCurrentRow(now)

	minute := now.Unix() / 60
	if minute != t.st.lastMinute {
		t.st.lastMinute = minute
		t.UpdateHeaders(now)
		t.UpdateFlaps(now)
		snap.MinutePass = true
	}

	hour := schedule.HourOfDay(now)
	snap.DayProgress = t.window.DayProgress(hour)
	snap.Sleeping = t.window.IsSleepTime(hour)
	return snap
}

// UpdateCurrentRow marks the row covering now and keeps its progress fill
// and live clock up to date.
func (t *Tracker) UpdateCurrentRow(now time.Time) Snapshot {
	t.ensureCache()
	snap := Snapshot{Now: now}

	c, ok := FindCurrent(schedule.HourOfDay(now), t.st.sorted)
	var next *grid.Row
	if ok && !c.Stale() {
		next = t.rowFor(c.Slot)
	}

	if prev := t.st.active; prev != nil && prev != next {
		prev.Current = false
		prev.Time.Undecorate()
		t.st.active = nil
	}

	if next == nil {
		return snap
	}

	next.Current = true
	d, created := next.Time.Decorate()
	if created {
		logger.Debug("current row activated", "slot", c.Slot.Key())
	}
	d.Progress = c.Progress
	d.LiveTime = schedule.FormatClock(now)
	t.st.active = next

	snap.Current = c
	snap.HasCurrent = true
	return snap
}

// UpdateHeaders decorates today's header and flags today's cells.
func (t *Tracker) UpdateHeaders(now time.Time) {
	t.ensureCache()
	hour := schedule.HourOfDay(now)
	today := now.Weekday()

	for _, h := range t.st.headers {
		if h.Weekday != today {
			if h.Today {
				h.Today = false
				h.Undecorate()
			}
			continue
		}
		h.Today = true
		d, _ := h.Decorate()
		d.Progress = t.window.DayProgress(hour)
		d.Date = now.Format("Jan 2")
		d.Zzz = t.window.IsSleepTime(hour)
		d.Clock = schedule.FormatClock(now)
	}

	todayCol := schedule.ColumnForWeekday(today)
	for _, r := range t.st.rows {
		if r.Detached() {
			continue
		}
		for _, c := range r.Cells() {
			c.Today = c.Column == todayCol
		}
	}
}

// UpdateFlaps closes every flap while asleep and opens them while awake.
// A held peek keeps them open.
func (t *Tracker) UpdateFlaps(now time.Time) {
	if t.peeking {
		t.surface.SetFlapsOpen(true)
		return
	}
	t.surface.SetFlapsOpen(!t.window.IsSleepTime(schedule.HourOfDay(now)))
}

// Peek opens all flaps until Release.
func (t *Tracker) Peek() {
	t.peeking = true
	t.surface.SetFlapsOpen(true)
}

// Release ends a peek. Flaps close again only during sleep hours.
func (t *Tracker) Release(now time.Time) {
	t.peeking = false
	if t.window.IsSleepTime(schedule.HourOfDay(now)) {
		t.surface.SetFlapsOpen(false)
	}
}

// Peeking reports whether a peek is held.
func (t *Tracker) Peeking() bool {
	return t.peeking
}
