package engine

import (
	"reflect"
	"testing"
)

func widgetList(ids ...string) []Widget {
	out := make([]Widget, len(ids))
	for i, id := range ids {
		out[i] = Widget{ID: id, Type: "weather"}
	}
	return out
}

func idsOf(list []Widget) []string {
	out := make([]string, len(list))
	for i, w := range list {
		out[i] = w.ID
	}
	return out
}

func TestReduceAddAppends(t *testing.T) {
	in := widgetList("a", "b")
	out := Reduce(in, AddWidget(Widget{ID: "c", Type: "clock"}))
	if got, want := idsOf(out), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	if len(in) != 2 {
		t.Fatalf("input mutated: len = %d, want 2", len(in))
	}
}

func TestReduceRemove(t *testing.T) {
	in := widgetList("a", "b", "c")
	out := Reduce(in, RemoveWidget("b"))
	if got, want := idsOf(out), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	if got := idsOf(in); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("input mutated: ids = %v", got)
	}
}

func TestReduceRemoveMissingReturnsInput(t *testing.T) {
	in := widgetList("a", "b")
	out := Reduce(in, RemoveWidget("nope"))
	if &out[0] != &in[0] {
		t.Fatal("expected input slice back for missing id")
	}
}

func TestReduceReorder(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"forward", 1, 3, []string{"a", "c", "d", "b"}},
		{"backward", 3, 0, []string{"d", "a", "b", "c"}},
		{"adjacent", 0, 1, []string{"b", "a", "c", "d"}},
		{"same index", 2, 2, []string{"a", "b", "c", "d"}},
		{"from clamps high", 99, 0, []string{"d", "a", "b", "c"}},
		{"to clamps low", 2, -5, []string{"c", "a", "b", "d"}},
		{"both clamp to same", -1, -9, []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := widgetList("a", "b", "c", "d")
			out := Reduce(in, ReorderWidgets(tt.from, tt.to))
			if got := idsOf(out); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ids = %v, want %v", got, tt.want)
			}
			if got := idsOf(in); !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
				t.Fatalf("input mutated: ids = %v", got)
			}
		})
	}
}

func TestReduceUpdateDataClearsLoadingAndError(t *testing.T) {
	in := []Widget{{ID: "a", Type: "quote", Loading: true, Err: "quote backend unavailable"}}
	out := Reduce(in, UpdateWidgetData("a", "payload"))
	w := out[0]
	if w.Data != "payload" || w.Loading || w.Err != "" {
		t.Fatalf("widget = %+v, want data set, loading and error clear", w)
	}
	if !in[0].Loading {
		t.Fatal("input mutated")
	}
}

func TestReduceSetLoadingClearsError(t *testing.T) {
	in := []Widget{{ID: "a", Type: "quote", Err: "stale error"}}
	out := Reduce(in, SetWidgetLoading("a", true))
	if w := out[0]; !w.Loading || w.Err != "" {
		t.Fatalf("widget = %+v, want loading with no error", w)
	}
}

func TestReduceSetErrorKeepsData(t *testing.T) {
	in := []Widget{{ID: "a", Type: "crypto", Data: "old", Loading: true}}
	out := Reduce(in, SetWidgetError("a", "crypto backend unavailable"))
	w := out[0]
	if w.Err != "crypto backend unavailable" || w.Loading || w.Data != "old" {
		t.Fatalf("widget = %+v, want error set, loading clear, data kept", w)
	}
}

func TestReduceMissingIDIsNoop(t *testing.T) {
	in := widgetList("a")
	for _, a := range []Action{
		UpdateWidgetData("ghost", 1),
		SetWidgetLoading("ghost", true),
		SetWidgetError("ghost", "boom"),
	} {
		out := Reduce(in, a)
		if &out[0] != &in[0] {
			t.Fatalf("%T: expected input slice back for missing id", a)
		}
	}
}

// unknownAction is an action type Reduce has no case for.
type unknownAction struct{}

func (unknownAction) isAction() {}

func TestReduceUnknownActionReturnsInput(t *testing.T) {
	in := widgetList("a", "b")
	out := Reduce(in, unknownAction{})
	if &out[0] != &in[0] {
		t.Fatal("expected input slice back for unknown action")
	}
	if got := Reduce(nil, unknownAction{}); got != nil {
		t.Fatalf("Reduce(nil, unknown) = %v, want nil", got)
	}
}

func TestWidgetByID(t *testing.T) {
	list := widgetList("a", "b")
	if got := WidgetByID(list, "b"); got != 1 {
		t.Fatalf("WidgetByID = %d, want 1", got)
	}
	if got := WidgetByID(list, "z"); got != -1 {
		t.Fatalf("WidgetByID = %d, want -1", got)
	}
}
