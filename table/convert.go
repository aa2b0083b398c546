package table

import (
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	stateHeaderRE = regexp.MustCompile(`^\s*State\s+(\d+)\s*$`)
	// The inner group is greedy, so a key containing a literal ] spans up to
	// the last ] before the colon.
	itemLineRE = regexp.MustCompile(`^\s*\[(.*)\]\s*:\s*(\d+)\s*$`)
)

// Category tags in raw keys. They mark a symbol as terminal or non-terminal
// in the dump and carry no information once the key is normalized.
const (
	terminalTag    = "T"
	nonTerminalTag = "NT"
)

type convertConfig struct {
	includeEmptyStates bool
}

type ConvertOption func(c *convertConfig)

// OmitEmptyStates disables gap filling: only states that appear as explicit
// headers in the source end up in the table, in first-seen order.
func OmitEmptyStates() ConvertOption {
	return func(c *convertConfig) {
		c.includeEmptyStates = false
	}
}

// Convert scans an automaton state dump and builds a state table. Lines
// matching neither the state header pattern nor the item pattern are
// skipped, as are item lines appearing before the first header. Invalid
// UTF-8 byte sequences in the source are substituted, never reported.
func Convert(src io.Reader, opts ...ConvertOption) (*StateTable, error) {
	c := convertConfig{
		includeEmptyStates: true,
	}
	for _, opt := range opts {
		opt(&c)
	}

	d, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	text := strings.ToValidUTF8(string(d), string(utf8.RuneError))

	tbl := NewStateTable()
	currentState := 0
	inState := false
	maxStateSeen := -1

	for _, line := range strings.Split(text, "\n") {
		if m := stateHeaderRE.FindStringSubmatch(line); m != nil {
			num, err := strconv.Atoi(m[1])
			if err != nil {
				// The pattern admits digit runs longer than an int; treat
				// such a header as decoration like any other unparsable line.
				continue
			}
			currentState = num
			inState = true
			if num > maxStateSeen {
				maxStateSeen = num
			}
			tbl.ensure(num)
			continue
		}

		if m := itemLineRE.FindStringSubmatch(line); m != nil && inState {
			value, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			tbl.append(currentState, &Item{
				Key:   normalizeKey(m[1]),
				Value: value,
			})
		}
	}

	if c.includeEmptyStates {
		for num := 0; num <= maxStateSeen; num++ {
			tbl.ensure(num)
		}
		sort.Ints(tbl.order)
	}

	return tbl, nil
}

// normalizeKey strips category tags and empty tokens from a raw
// comma-separated key and rejoins the rest canonically. Normalizing an
// already-normalized key changes nothing.
func normalizeKey(inner string) string {
	var syms []string
	for _, tok := range strings.Split(inner, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" || tok == terminalTag || tok == nonTerminalTag {
			continue
		}
		syms = append(syms, tok)
	}
	return "[" + strings.Join(syms, ", ") + "]"
}
