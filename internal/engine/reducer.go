package engine

// Reduce maps (list, action) to a new list. It is pure and total: the input
// slice and its widgets are never mutated, every change returns a freshly
// built slice, and anything unrecognized (unknown action, id with no match)
// returns the input unchanged. That last rule is load-bearing: a fetch that
// completes after its widget was removed dispatches against a missing id and
// must be absorbed silently.
func Reduce(list []Widget, action Action) []Widget {
	switch a := action.(type) {
	case addWidgetAction:
		out := make([]Widget, 0, len(list)+1)
		out = append(out, list...)
		return append(out, a.Widget)

	case removeWidgetAction:
		if WidgetByID(list, a.ID) < 0 {
			return list
		}
		out := make([]Widget, 0, len(list)-1)
		for _, w := range list {
			if w.ID != a.ID {
				out = append(out, w)
			}
		}
		return out

	case reorderWidgetsAction:
		from, to := clampIndex(a.From, len(list)), clampIndex(a.To, len(list))
		if from == to || len(list) < 2 {
			return list
		}
		out := make([]Widget, 0, len(list))
		out = append(out, list[:from]...)
		out = append(out, list[from+1:]...)
		moved := list[from]
		out = append(out[:to], append([]Widget{moved}, out[to:]...)...)
		return out

	case updateWidgetDataAction:
		return mutateByID(list, a.ID, func(w Widget) Widget {
			w.Data = a.Data
			w.Loading = false
			w.Err = ""
			return w
		})

	case setWidgetLoadingAction:
		return mutateByID(list, a.ID, func(w Widget) Widget {
			w.Loading = a.Loading
			if a.Loading {
				// Loading and a present error never coexist.
				w.Err = ""
			}
			return w
		})

	case setWidgetErrorAction:
		return mutateByID(list, a.ID, func(w Widget) Widget {
			w.Err = a.Err
			w.Loading = false
			return w
		})
	}
	return list
}

// mutateByID rebuilds the list with fn applied to the matching widget, or
// returns the input unchanged when no widget matches.
func mutateByID(list []Widget, id string, fn func(Widget) Widget) []Widget {
	idx := WidgetByID(list, id)
	if idx < 0 {
		return list
	}
	out := make([]Widget, len(list))
	copy(out, list)
	out[idx] = fn(out[idx])
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		if n == 0 {
			return 0
		}
		return n - 1
	}
	return i
}
