// Package action defines the actions that flow through the dispatcher and the
// creators that turn UI intents into dispatched actions.
package action

import (
	"errors"
	"fmt"
)

// Type tags an action on the dispatch channel.
type Type string

const (
	TypeAddItem    Type = "ADD_ITEM"
	TypeRemoveItem Type = "REMOVE_ITEM"
)

// ErrUnknownType is returned when a string names no known action type.
var ErrUnknownType = errors.New("unknown action type")

// ParseType converts a wire name to a Type.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeAddItem, TypeRemoveItem:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Source identifies where a dispatched action originated.
type Source string

// SourceView marks actions issued from the view layer.
const SourceView Source = "VIEW_ACTION"

// Action is an immutable request to change the list. The set of
// implementations is closed: AddItem and RemoveItem.
type Action interface {
	Type() Type
	isAction()
}

// AddItem appends Item to the end of the list.
type AddItem struct {
	Item string
}

// Type implements Action.
func (AddItem) Type() Type { return TypeAddItem }

func (AddItem) isAction() {}

// RemoveItem removes whatever item occupies Index when the action is processed.
type RemoveItem struct {
	Index int
}

// Type implements Action.
func (RemoveItem) Type() Type { return TypeRemoveItem }

func (RemoveItem) isAction() {}

// Payload is the envelope handed to dispatcher handlers.
type Payload struct {
	Source Source
	Action Action
}
