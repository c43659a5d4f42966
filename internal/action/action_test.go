package action

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recordingHandler struct {
	got []Action
	err error
}

func (r *recordingHandler) HandleAction(a Action) error {
	r.got = append(r.got, a)
	return r.err
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"ADD_ITEM", TypeAddItem, false},
		{"REMOVE_ITEM", TypeRemoveItem, false},
		{"add_item", "", true},
		{"CHANGE", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownType) {
					t.Fatalf("ParseType(%q) error = %v, want ErrUnknownType", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestActionTypes(t *testing.T) {
	if got := (AddItem{Item: "milk"}).Type(); got != TypeAddItem {
		t.Errorf("AddItem.Type() = %q", got)
	}
	if got := (RemoveItem{Index: 1}).Type(); got != TypeRemoveItem {
		t.Errorf("RemoveItem.Type() = %q", got)
	}
}

func TestCreatorsForwardWithoutValidation(t *testing.T) {
	h := &recordingHandler{}
	c := NewCreators(h, nil)

	if err := c.AddItem("milk"); err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(""); err != nil {
		t.Fatal(err)
	}
	if err := c.RemoveItem(-3); err != nil {
		t.Fatal(err)
	}
	if err := c.RemoveItem(99); err != nil {
		t.Fatal(err)
	}

	want := []Action{
		AddItem{Item: "milk"},
		AddItem{Item: ""},
		RemoveItem{Index: -3},
		RemoveItem{Index: 99},
	}
	if diff := cmp.Diff(want, h.got); diff != "" {
		t.Errorf("forwarded actions mismatch (-want +got):\n%s", diff)
	}
}

func TestCreatorsReturnHandlerError(t *testing.T) {
	boom := errors.New("boom")
	c := NewCreators(&recordingHandler{err: boom}, nil)

	if err := c.AddItem("x"); !errors.Is(err, boom) {
		t.Errorf("AddItem() error = %v, want %v", err, boom)
	}
	if err := c.RemoveItem(0); !errors.Is(err, boom) {
		t.Errorf("RemoveItem() error = %v, want %v", err, boom)
	}
}
