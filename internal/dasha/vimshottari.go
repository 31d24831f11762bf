// Package dasha builds Vimshottari period trees: a 120-year cycle recursively
// subdivided into mahadasha, bhukti, antara, sukshma and prana periods, each
// child span proportional to its lord's weight. All instants are UTC at
// second resolution.
package dasha

import (
	"math"
	"time"

	"jyotish/internal/kp"
	apperrors "jyotish/pkg/domain-errors"
)

// Level tags the depth of a period node.
type Level string

const (
	Mahadasha Level = "mahadasha"
	Bhukti    Level = "bhukti"
	Antara    Level = "antara"
	Sukshma   Level = "sukshma"
	Prana     Level = "prana"
)

// levels orders the five depths, mahadasha first.
var levels = [5]Level{Mahadasha, Bhukti, Antara, Sukshma, Prana}

// MaxDepth is the deepest supported subdivision.
const MaxDepth = len(levels)

// daysPerYear converts dasha years to days.
const daysPerYear = 365.2425

// Node is one period in the tree. End is exclusive: the next sibling starts
// exactly at End. Children, when present, partition [Start, End) with no gaps
// and no overlaps.
type Node struct {
	Level    Level     `json:"level"`
	Lord     kp.Lord   `json:"lord"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Children []Node    `json:"children,omitempty"`
}

// addDays advances t by a fractional day count, rounded to whole seconds.
// The wire contract is second resolution; rounding here instead of at
// serialization keeps node boundaries contiguous.
func addDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(math.Round(days*86400.0)) * time.Second)
}

func yearsToDays(years float64) float64 {
	return years * daysPerYear
}

// clampBalance limits a balance to [0, full years of lord].
func clampBalance(lord kp.Lord, balanceYears float64) float64 {
	total := kp.Years[lord]
	if balanceYears < 0 {
		return 0
	}
	if balanceYears > total {
		return total
	}
	return balanceYears
}

// BuildTree builds one mahadasha subtree of the given depth (1..MaxDepth)
// starting at start with a balance-adjusted first span. An unknown lord fails
// before any node is produced.
func BuildTree(start time.Time, lord kp.Lord, balanceYears float64, depth int) (Node, error) {
	if !kp.Valid(lord) {
		return Node{}, apperrors.New(apperrors.CodeBadRequest, "invalid dasha lord: "+string(lord))
	}
	if depth < 1 {
		depth = 1
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}

	start = start.UTC()
	years := clampBalance(lord, balanceYears)
	end := addDays(start, yearsToDays(years))

	node := Node{Level: Mahadasha, Lord: lord, Start: start, End: end}
	subdivide(&node, 1, depth)
	return node, nil
}

// subdivide attaches one level of nine children to node and recurses. The
// walk starts at the node's own lord; every child span is weight/120 of the
// parent span, except the last, whose end is forced to the parent end so the
// children always partition the parent exactly.
func subdivide(node *Node, levelIdx, depth int) {
	if levelIdx >= depth {
		return
	}
	level := levels[levelIdx]
	parentDays := node.End.Sub(node.Start).Seconds() / 86400.0

	children := make([]Node, 0, len(kp.Order))
	cur := node.Start
	lord := node.Lord
	for i := 0; i < len(kp.Order); i++ {
		days := parentDays * (kp.Years[lord] / kp.TotalYears)
		end := addDays(cur, days)
		if i == len(kp.Order)-1 {
			end = node.End
		}
		child := Node{Level: level, Lord: lord, Start: cur, End: end}
		subdivide(&child, levelIdx+1, depth)
		children = append(children, child)
		cur = end
		lord = kp.Next(lord)
	}
	node.Children = children
}

// BuildLevel materializes exactly one level's nine nodes inside an arbitrary
// [start, end) window, walking the cycle from startLord. A degenerate window
// (end ≤ start) yields an empty list; callers probe zero-width windows.
func BuildLevel(level Level, start, end time.Time, startLord kp.Lord) ([]Node, error) {
	if !kp.Valid(startLord) {
		return nil, apperrors.New(apperrors.CodeBadRequest, "invalid dasha lord: "+string(startLord))
	}
	start = start.UTC()
	end = end.UTC()
	if !end.After(start) {
		return []Node{}, nil
	}

	parentDays := end.Sub(start).Seconds() / 86400.0

	out := make([]Node, 0, len(kp.Order))
	cur := start
	lord := startLord
	for i := 0; i < len(kp.Order); i++ {
		days := parentDays * (kp.Years[lord] / kp.TotalYears)
		nodeEnd := addDays(cur, days)
		if i == len(kp.Order)-1 || nodeEnd.After(end) {
			nodeEnd = end
		}
		out = append(out, Node{Level: level, Lord: lord, Start: cur, End: nodeEnd})
		cur = nodeEnd
		lord = kp.Next(lord)
		if !cur.Before(end) {
			break
		}
	}
	return out, nil
}

// MahadashaList returns the nine mahadashas covering a 120-year horizon from
// start. The first node spans only the remaining balance of its lord; the
// following eight run full length in cycle order. No children are attached;
// this is the cheap top-level timeline.
func MahadashaList(start time.Time, lord kp.Lord, balanceYears float64) ([]Node, error) {
	if !kp.Valid(lord) {
		return nil, apperrors.New(apperrors.CodeBadRequest, "invalid dasha lord: "+string(lord))
	}

	start = start.UTC()
	out := make([]Node, 0, len(kp.Order))

	first := clampBalance(lord, balanceYears)
	end := addDays(start, yearsToDays(first))
	out = append(out, Node{Level: Mahadasha, Lord: lord, Start: start, End: end})

	cur := end
	l := kp.Next(lord)
	for i := 0; i < len(kp.Order)-1; i++ {
		e := addDays(cur, yearsToDays(kp.Years[l]))
		out = append(out, Node{Level: Mahadasha, Lord: l, Start: cur, End: e})
		cur = e
		l = kp.Next(l)
	}
	return out, nil
}

// Timeline120 builds the full 120-year list of mahadasha subtrees at the
// given depth: the balance-adjusted first mahadasha, then full ones until the
// cycle's 120 years are used up.
func Timeline120(start time.Time, lord kp.Lord, balanceYears float64, depth int) ([]Node, error) {
	if !kp.Valid(lord) {
		return nil, apperrors.New(apperrors.CodeBadRequest, "invalid dasha lord: "+string(lord))
	}

	start = start.UTC()
	out := make([]Node, 0, len(kp.Order)+1)

	used := 0.0
	cur := start
	appendOne := func(l kp.Lord, years float64) error {
		if years <= 0 {
			return nil
		}
		node, err := BuildTree(cur, l, years, depth)
		if err != nil {
			return err
		}
		out = append(out, node)
		cur = node.End
		used += years
		return nil
	}

	first := clampBalance(lord, balanceYears)
	if err := appendOne(lord, math.Min(first, kp.TotalYears)); err != nil {
		return nil, err
	}
	l := kp.Next(lord)
	for used < kp.TotalYears-1e-9 {
		if err := appendOne(l, math.Min(kp.Years[l], kp.TotalYears-used)); err != nil {
			return nil, err
		}
		l = kp.Next(l)
	}
	return out, nil
}
