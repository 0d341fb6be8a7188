// Package input provides headless action resolvers.
package input

import (
	"fmt"
	"strconv"
	"strings"

	cfg "github.com/automoto/cratefall/config"
)

// Span holds an action for ticks From through To, inclusive. Ticks count from
// 1, matching the session tick counter.
type Span struct {
	Action   cfg.ActionID
	From, To uint64
}

// Scripted replays a fixed input script. Each Poll call is one tick.
type Scripted struct {
	spans []Span
	tick  uint64
}

func NewScripted(spans ...Span) *Scripted {
	return &Scripted{spans: spans}
}

// ParseScript reads a comma-separated list of "action:from-to" or
// "action:tick" entries, e.g. "right:1-30,jump:10".
func ParseScript(script string) (*Scripted, error) {
	s := &Scripted{}
	for _, entry := range strings.Split(script, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		span, err := parseSpan(entry)
		if err != nil {
			return nil, fmt.Errorf("input: script entry %q: %w", entry, err)
		}
		s.spans = append(s.spans, span)
	}
	return s, nil
}

func parseSpan(entry string) (Span, error) {
	name, ticks, ok := strings.Cut(entry, ":")
	if !ok {
		return Span{}, fmt.Errorf("missing ':'")
	}
	action, err := cfg.ParseAction(name)
	if err != nil {
		return Span{}, err
	}

	fromStr, toStr, isRange := strings.Cut(ticks, "-")
	from, err := strconv.ParseUint(strings.TrimSpace(fromStr), 10, 64)
	if err != nil {
		return Span{}, err
	}
	to := from
	if isRange {
		if to, err = strconv.ParseUint(strings.TrimSpace(toStr), 10, 64); err != nil {
			return Span{}, err
		}
	}
	if from == 0 || to < from {
		return Span{}, fmt.Errorf("bad tick range %d-%d", from, to)
	}
	return Span{Action: action, From: from, To: to}, nil
}

// Poll advances to the next tick and returns the actions held during it.
func (s *Scripted) Poll() [cfg.ActionCount]bool {
	s.tick++
	var held [cfg.ActionCount]bool
	for _, span := range s.spans {
		if s.tick >= span.From && s.tick <= span.To {
			held[span.Action] = true
		}
	}
	return held
}

// Tick returns the number of ticks polled so far.
func (s *Scripted) Tick() uint64 {
	return s.tick
}

// Last returns the final tick any span holds an action, or 0 for an empty
// script.
func (s *Scripted) Last() uint64 {
	var last uint64
	for _, span := range s.spans {
		last = max(last, span.To)
	}
	return last
}
