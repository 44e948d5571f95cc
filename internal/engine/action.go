package engine

// Action is a request to transform the widget list. Actions are plain value
// types, mirroring how bubbletea messages describe state changes; Reduce is
// the only interpreter.
type Action interface{ isAction() }

type addWidgetAction struct {
	Widget Widget
}

type removeWidgetAction struct {
	ID string
}

type reorderWidgetsAction struct {
	From, To int
}

type updateWidgetDataAction struct {
	ID   string
	Data any
}

type setWidgetLoadingAction struct {
	ID      string
	Loading bool
}

type setWidgetErrorAction struct {
	ID  string
	Err string
}

func (addWidgetAction) isAction()        {}
func (removeWidgetAction) isAction()     {}
func (reorderWidgetsAction) isAction()   {}
func (updateWidgetDataAction) isAction() {}
func (setWidgetLoadingAction) isAction() {}
func (setWidgetErrorAction) isAction()   {}

// AddWidget appends w to the end of the list.
func AddWidget(w Widget) Action { return addWidgetAction{Widget: w} }

// RemoveWidget filters out the widget with the given id.
func RemoveWidget(id string) Action { return removeWidgetAction{ID: id} }

// ReorderWidgets moves the element at from to position to. Out-of-range
// indices are clamped.
func ReorderWidgets(from, to int) Action { return reorderWidgetsAction{From: from, To: to} }

// UpdateWidgetData records a successful fetch: sets data, clears loading
// and any prior error.
func UpdateWidgetData(id string, data any) Action { return updateWidgetDataAction{ID: id, Data: data} }

// SetWidgetLoading toggles the loading flag.
func SetWidgetLoading(id string, loading bool) Action {
	return setWidgetLoadingAction{ID: id, Loading: loading}
}

// SetWidgetError records a failed fetch: sets the error and clears loading.
// Prior data is retained.
func SetWidgetError(id, errText string) Action { return setWidgetErrorAction{ID: id, Err: errText} }
