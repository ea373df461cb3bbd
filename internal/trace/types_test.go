package trace

import "testing"

func TestTagsAddIsIdempotent(t *testing.T) {
	var tags Tags
	tags.Add(ButtonPress)
	tags.Add(ButtonPress)
	if len(tags) != 1 {
		t.Fatalf("got %d tags, want 1", len(tags))
	}
}

func TestDefaultEnricherTagsSilentEvents(t *testing.T) {
	e := NewEvent(ButtonPress, "button", "")
	DefaultEnricher(e)
	if !e.Tags.Has("silent") {
		t.Fatalf("expected silent tag on empty-detail event, got %v", e.Tags)
	}
}

func TestRingEvictsOldestWhenFull(t *testing.T) {
	r := NewRing(2)
	r.Add(NewEvent(ButtonPress, "a", ""))
	r.Add(NewEvent(ButtonPress, "b", ""))
	r.Add(NewEvent(ButtonPress, "c", ""))

	events := r.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Keyword != "b" || events[1].Keyword != "c" {
		t.Fatalf("expected oldest evicted, got %q then %q", events[0].Keyword, events[1].Keyword)
	}
}

func TestRingBelowCapacityPreservesOrder(t *testing.T) {
	r := NewRing(5)
	r.Add(NewEvent(ButtonPress, "a", ""))
	r.Add(NewEvent(ButtonPress, "b", ""))

	events := r.Events()
	if len(events) != 2 || events[0].Keyword != "a" || events[1].Keyword != "b" {
		t.Fatalf("got %+v", events)
	}
}
