package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Item is one transition or lookahead entry within a state. Key is the
// normalized bracketed symbol sequence, Value the target state or action
// number that followed the colon in the source dump.
type Item struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

// StateEntry pairs a state number with its items in source order.
type StateEntry struct {
	Number int
	Items  []*Item
}

// StateTable maps state numbers to their items. Member order is significant:
// numeric ascending after gap filling, first-seen order otherwise. A Go map
// alone cannot carry that, so the table keeps an explicit order slice.
type StateTable struct {
	states map[int][]*Item
	order  []int
}

func NewStateTable() *StateTable {
	return &StateTable{
		states: map[int][]*Item{},
	}
}

// ensure registers a state with an empty item sequence unless it already
// exists. It reports whether the state was newly added.
func (t *StateTable) ensure(state int) bool {
	if _, ok := t.states[state]; ok {
		return false
	}
	t.states[state] = []*Item{}
	t.order = append(t.order, state)
	return true
}

func (t *StateTable) append(state int, item *Item) {
	t.ensure(state)
	t.states[state] = append(t.states[state], item)
}

// Items returns the item sequence for a state and whether the state exists.
func (t *StateTable) Items(state int) ([]*Item, bool) {
	items, ok := t.states[state]
	return items, ok
}

// States returns all entries in table order.
func (t *StateTable) States() []StateEntry {
	entries := make([]StateEntry, 0, len(t.order))
	for _, num := range t.order {
		entries = append(entries, StateEntry{
			Number: num,
			Items:  t.states[num],
		})
	}
	return entries
}

func (t *StateTable) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, num := range t.order {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%q:", strconv.Itoa(num))
		items, err := marshalItems(t.states[num])
		if err != nil {
			return nil, err
		}
		b.Write(items)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// marshalItems encodes an item sequence without HTML escaping so symbols
// like < and > survive as-is.
func marshalItems(items []*Item) ([]byte, error) {
	var b bytes.Buffer
	e := json.NewEncoder(&b)
	e.SetEscapeHTML(false)
	err := e.Encode(items)
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes a serialized table, preserving the member order of
// the document. It walks the object token by token because encoding/json
// would otherwise drop the order on the floor.
func (t *StateTable) UnmarshalJSON(data []byte) error {
	t.states = map[int][]*Item{}
	t.order = nil

	d := json.NewDecoder(bytes.NewReader(data))
	tok, err := d.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("a state table must be a JSON object")
	}
	for d.More() {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("a state table member name must be a string")
		}
		num, err := strconv.Atoi(name)
		if err != nil || num < 0 {
			return fmt.Errorf("invalid state number %q", name)
		}
		var items []*Item
		err = d.Decode(&items)
		if err != nil {
			return err
		}
		if items == nil {
			items = []*Item{}
		}
		if t.ensure(num) {
			t.states[num] = items
		}
	}
	_, err = d.Token()
	return err
}
