package engine

// navigationFor derives the prev/next day state. The selected date for
// navigation purposes is the filter's date when set, else the newest date.
// A selected date missing from the date index behaves as "no selection":
// both directions disabled.
func navigationFor(dates []string, selected string) Navigation {
	nav := Navigation{SelectedDate: selected}
	if len(dates) == 0 {
		return nav
	}

	if selected == "" {
		selected = dates[0]
		nav.SelectedDate = selected
	}

	i := indexOfDate(dates, selected)
	if i >= 0 && i < len(dates)-1 {
		nav.PrevEnabled = true
		nav.PrevDate = dates[i+1]
	}
	if i > 0 {
		nav.NextEnabled = true
		nav.NextDate = dates[i-1]
	}
	return nav
}

// StepPrev moves the selection one day earlier. With no current selection
// (or an unknown date) it selects the newest date and steps no further on
// that same invocation.
func (e *Engine) StepPrev(state FilterState) FilterState {
	dates := e.snap.Dates
	if len(dates) == 0 {
		return state
	}

	i := indexOfDate(dates, state.Date)
	if state.Date == "" || i < 0 {
		state.Date = dates[0]
		return state
	}
	if i < len(dates)-1 {
		state.Date = dates[i+1]
	}
	return state
}

// StepNext moves the selection one day later. With no current selection
// (or an unknown date) it selects the newest date and steps no further on
// that same invocation.
func (e *Engine) StepNext(state FilterState) FilterState {
	dates := e.snap.Dates
	if len(dates) == 0 {
		return state
	}

	i := indexOfDate(dates, state.Date)
	if state.Date == "" || i < 0 {
		state.Date = dates[0]
		return state
	}
	if i > 0 {
		state.Date = dates[i-1]
	}
	return state
}
