package dispatcher

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nibzard/fluxtodo/internal/action"
)

func TestDispatchOrder(t *testing.T) {
	d := New(nil)
	var calls []string
	d.Register(func(action.Payload) { calls = append(calls, "first") })
	d.Register(func(action.Payload) { calls = append(calls, "second") })
	d.Register(func(action.Payload) { calls = append(calls, "third") })

	if err := d.Dispatch(action.Payload{Action: action.AddItem{Item: "milk"}}); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	want := []string{"first", "second", "third"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("handler order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterTokens(t *testing.T) {
	d := New(nil)
	h := func(action.Payload) {}

	first := d.Register(h)
	second := d.Register(h)

	if first != "ID_1" || second != "ID_2" {
		t.Errorf("tokens = %q, %q; want ID_1, ID_2", first, second)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (no duplicate detection)", d.Len())
	}
}

func TestHandleActionWrapsPayload(t *testing.T) {
	d := New(nil)
	var got action.Payload
	d.Register(func(p action.Payload) { got = p })

	if err := d.HandleAction(action.RemoveItem{Index: 2}); err != nil {
		t.Fatalf("HandleAction() error = %v", err)
	}

	want := action.Payload{Source: action.SourceView, Action: action.RemoveItem{Index: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestUnregister(t *testing.T) {
	d := New(nil)
	var calls []string
	tok := d.Register(func(action.Payload) { calls = append(calls, "a") })
	d.Register(func(action.Payload) { calls = append(calls, "b") })

	if err := d.Unregister(tok); err != nil {
		t.Fatalf("Unregister() error = %v", err)
	}
	if err := d.HandleAction(action.AddItem{}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b"}, calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}

	if err := d.Unregister(tok); !errors.Is(err, ErrUnknownToken) {
		t.Errorf("second Unregister() error = %v, want ErrUnknownToken", err)
	}
	if err := d.Unregister("ID_99"); !errors.Is(err, ErrUnknownToken) {
		t.Errorf("Unregister(ID_99) error = %v, want ErrUnknownToken", err)
	}
}

func TestNestedDispatchRejected(t *testing.T) {
	d := New(nil)
	var nestedErr error
	var count int
	d.Register(func(p action.Payload) {
		count++
		if !d.IsDispatching() {
			t.Error("IsDispatching() = false inside handler")
		}
		nestedErr = d.HandleAction(action.AddItem{Item: "nested"})
	})

	if err := d.HandleAction(action.AddItem{Item: "outer"}); err != nil {
		t.Fatalf("HandleAction() error = %v", err)
	}
	if !errors.Is(nestedErr, ErrNestedDispatch) {
		t.Errorf("nested dispatch error = %v, want ErrNestedDispatch", nestedErr)
	}
	if count != 1 {
		t.Errorf("handler ran %d times, want 1", count)
	}
	if d.IsDispatching() {
		t.Error("IsDispatching() = true after dispatch returned")
	}
}

func TestUnregisterDuringDispatch(t *testing.T) {
	d := New(nil)
	var calls []string
	var second Token
	removed := false
	d.Register(func(action.Payload) {
		calls = append(calls, "a")
		if removed {
			return
		}
		removed = true
		if err := d.Unregister(second); err != nil {
			t.Errorf("Unregister() error = %v", err)
		}
	})
	second = d.Register(func(action.Payload) { calls = append(calls, "b") })

	if err := d.HandleAction(action.AddItem{}); err != nil {
		t.Fatal(err)
	}
	if err := d.HandleAction(action.AddItem{}); err != nil {
		t.Fatal(err)
	}

	// The in-flight dispatch still reaches "b"; the next one does not.
	if diff := cmp.Diff([]string{"a", "b", "a"}, calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestPanicResetsDispatching(t *testing.T) {
	d := New(nil)
	d.Register(func(action.Payload) { panic("handler failed") })

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected handler panic to propagate")
			}
		}()
		_ = d.HandleAction(action.AddItem{})
	}()

	if d.IsDispatching() {
		t.Error("IsDispatching() = true after panic")
	}
}
