package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nibzard/fluxtodo/internal/action"
	"github.com/nibzard/fluxtodo/internal/dispatcher"
)

type countingListener struct {
	calls int
}

func (c *countingListener) OnChange() { c.calls++ }

func newTestStore(t *testing.T) (*Store, *action.Creators) {
	t.Helper()
	d := dispatcher.New(nil)
	s := New(d, nil)
	return s, action.NewCreators(d, nil)
}

func mustAdd(t *testing.T, c *action.Creators, items ...string) {
	t.Helper()
	for _, item := range items {
		if err := c.AddItem(item); err != nil {
			t.Fatalf("AddItem(%q) error = %v", item, err)
		}
	}
}

func TestAddItemPreservesCallOrder(t *testing.T) {
	s, c := newTestStore(t)
	items := []string{"milk", "eggs", "", "bread", "milk"}
	mustAdd(t, c, items...)

	if diff := cmp.Diff(items, s.GetList()); diff != "" {
		t.Errorf("GetList() mismatch (-want +got):\n%s", diff)
	}
}

func TestMilkEggsScenario(t *testing.T) {
	s, c := newTestStore(t)

	if diff := cmp.Diff([]string{}, s.GetList()); diff != "" {
		t.Fatalf("initial list not empty:\n%s", diff)
	}
	mustAdd(t, c, "milk", "eggs")
	if diff := cmp.Diff([]string{"milk", "eggs"}, s.GetList()); diff != "" {
		t.Fatalf("after adds (-want +got):\n%s", diff)
	}
	if err := c.RemoveItem(0); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"eggs"}, s.GetList()); diff != "" {
		t.Errorf("after remove (-want +got):\n%s", diff)
	}
}

func TestRemoveItemValidIndex(t *testing.T) {
	base := []string{"a", "b", "c", "d"}
	for i := range base {
		s, c := newTestStore(t)
		mustAdd(t, c, base...)

		if err := c.RemoveItem(i); err != nil {
			t.Fatal(err)
		}

		want := append(append([]string{}, base[:i]...), base[i+1:]...)
		if diff := cmp.Diff(want, s.GetList()); diff != "" {
			t.Errorf("RemoveItem(%d) mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestRemoveItemOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		index int
		want  []string
	}{
		{"past end is a no-op", []string{"milk", "eggs"}, 5, []string{"milk", "eggs"}},
		{"exactly len is a no-op", []string{"milk", "eggs"}, 2, []string{"milk", "eggs"}},
		{"empty list", []string{}, 0, []string{}},
		{"negative counts from end", []string{"a", "b", "c"}, -1, []string{"a", "b"}},
		{"negative middle", []string{"a", "b", "c"}, -2, []string{"a", "c"}},
		{"negative beyond start clamps to first", []string{"a", "b"}, -10, []string{"b"}},
		{"negative on empty", []string{}, -1, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c := newTestStore(t)
			mustAdd(t, c, tt.start...)

			if err := c.RemoveItem(tt.index); err != nil {
				t.Fatalf("RemoveItem(%d) error = %v", tt.index, err)
			}
			if diff := cmp.Diff(tt.want, s.GetList()); diff != "" {
				t.Errorf("RemoveItem(%d) mismatch (-want +got):\n%s", tt.index, diff)
			}
		})
	}
}

func TestOneNotificationPerMutation(t *testing.T) {
	s, c := newTestStore(t)
	a, b := &countingListener{}, &countingListener{}
	s.AddChangeListener(a)
	s.AddChangeListener(b)

	mustAdd(t, c, "milk", "eggs")
	if err := c.RemoveItem(0); err != nil {
		t.Fatal(err)
	}

	if a.calls != 3 || b.calls != 3 {
		t.Errorf("calls = %d, %d; want 3 each", a.calls, b.calls)
	}
}

func TestNoOpRemovalStillNotifies(t *testing.T) {
	s, c := newTestStore(t)
	l := &countingListener{}
	s.AddChangeListener(l)

	if err := c.RemoveItem(5); err != nil {
		t.Fatal(err)
	}
	if l.calls != 1 {
		t.Errorf("calls = %d, want 1", l.calls)
	}
}

func TestUnsubscribedListenerGetsNothing(t *testing.T) {
	s, c := newTestStore(t)
	l := &countingListener{}
	s.AddChangeListener(l)

	mustAdd(t, c, "milk")
	s.RemoveChangeListener(l)
	mustAdd(t, c, "eggs")
	if err := c.RemoveItem(0); err != nil {
		t.Fatal(err)
	}

	if l.calls != 1 {
		t.Errorf("calls = %d, want 1", l.calls)
	}
	if s.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0", s.ListenerCount())
	}
}

func TestRemoveUnknownListenerIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	subscribed := &countingListener{}
	s.AddChangeListener(subscribed)

	s.RemoveChangeListener(&countingListener{})

	if s.ListenerCount() != 1 {
		t.Errorf("ListenerCount() = %d, want 1", s.ListenerCount())
	}
}

func TestDuplicateSubscription(t *testing.T) {
	s, c := newTestStore(t)
	l := &countingListener{}
	s.AddChangeListener(l)
	s.AddChangeListener(l)

	mustAdd(t, c, "milk")
	if l.calls != 2 {
		t.Errorf("calls = %d, want 2 for a double subscription", l.calls)
	}

	s.RemoveChangeListener(l)
	mustAdd(t, c, "eggs")
	if l.calls != 3 {
		t.Errorf("calls = %d, want 3 after removing one subscription", l.calls)
	}
}

func TestListenerFunc(t *testing.T) {
	s, c := newTestStore(t)
	var seen []string
	f := ListenerFunc(func() { seen = s.GetList() })
	s.AddChangeListener(&f)

	mustAdd(t, c, "milk")
	if diff := cmp.Diff([]string{"milk"}, seen); diff != "" {
		t.Errorf("listener saw stale list (-want +got):\n%s", diff)
	}

	s.RemoveChangeListener(&f)
	if s.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0", s.ListenerCount())
	}
}

func TestGetListReturnsCopy(t *testing.T) {
	s, c := newTestStore(t)
	mustAdd(t, c, "milk")

	got := s.GetList()
	got[0] = "mutated"

	if diff := cmp.Diff([]string{"milk"}, s.GetList()); diff != "" {
		t.Errorf("store mutated through GetList (-want +got):\n%s", diff)
	}
}

func TestListenerRemovedDuringNotification(t *testing.T) {
	s, c := newTestStore(t)
	second := &countingListener{}
	var first ListenerFunc = func() { s.RemoveChangeListener(second) }
	s.AddChangeListener(&first)
	s.AddChangeListener(second)

	mustAdd(t, c, "milk")
	mustAdd(t, c, "eggs")

	// Notified for the in-flight change only.
	if second.calls != 1 {
		t.Errorf("calls = %d, want 1", second.calls)
	}
}

func TestClose(t *testing.T) {
	d := dispatcher.New(nil)
	s := New(d, nil)
	c := action.NewCreators(d, nil)

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	mustAdd(t, c, "ignored")
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Close, want 0", s.Len())
	}
	if err := s.Close(); err == nil {
		t.Error("second Close() should fail")
	}
}

func TestUnknownPayloadIgnored(t *testing.T) {
	d := dispatcher.New(nil)
	s := New(d, nil)
	l := &countingListener{}
	s.AddChangeListener(l)

	if err := d.Dispatch(action.Payload{Source: action.SourceView}); err != nil {
		t.Fatal(err)
	}
	if l.calls != 0 {
		t.Errorf("calls = %d, want 0 for unknown payload", l.calls)
	}
}
