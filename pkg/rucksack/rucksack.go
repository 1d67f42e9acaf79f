// Package rucksack solves the rucksack reorganization puzzle: each line is an
// inventory of items identified by a single ASCII letter.
package rucksack

import (
	"sort"

	"github.com/tduindam/aoc-2022/pkg/puzzle"
)

// Inventory is the set of distinct items in a line.
type Inventory map[byte]struct{}

// Priority maps an item to its priority: a..z are 1..26 and A..Z are 27..52.
// ok is false for anything else.
func Priority(item byte) (p uint64, ok bool) {
	switch {
	case item >= 'a' && item <= 'z':
		return uint64(item-'a') + 1, true
	case item >= 'A' && item <= 'Z':
		return uint64(item-'A') + 27, true
	default:
		return 0, false
	}
}

// ParseInventory builds the item set of a line. Every character must be an
// ASCII letter.
func ParseInventory(line string) (Inventory, error) {
	inv := make(Inventory, len(line))
	for i := 0; i < len(line); i++ {
		if _, ok := Priority(line[i]); !ok {
			return nil, puzzle.NewValidationError("item %q at column %d is not a letter", line[i], i+1)
		}
		inv[line[i]] = struct{}{}
	}
	return inv, nil
}

// Intersect returns the items present in every inventory, in ascending order.
func Intersect(invs ...Inventory) []byte {
	if len(invs) == 0 {
		return nil
	}
	var common []byte
	for item := range invs[0] {
		shared := true
		for _, other := range invs[1:] {
			if _, ok := other[item]; !ok {
				shared = false
				break
			}
		}
		if shared {
			common = append(common, item)
		}
	}
	sort.Slice(common, func(i, j int) bool { return common[i] < common[j] })
	return common
}

// SplitHalf returns the item shared by the two halves of a line. The line
// must have even length and the halves must share exactly one distinct item.
func SplitHalf(line string) (byte, error) {
	if len(line)%2 != 0 {
		return 0, puzzle.NewValidationError("line must have an even number of items, got %d", len(line))
	}
	half := len(line) / 2
	first, err := ParseInventory(line[:half])
	if err != nil {
		return 0, err
	}
	second, err := ParseInventory(line[half:])
	if err != nil {
		return 0, err
	}
	return single(Intersect(first, second), "compartments")
}

// SplitHalfPriority returns the priority of the item shared by both halves.
func SplitHalfPriority(line string) (uint64, error) {
	item, err := SplitHalf(line)
	if err != nil {
		return 0, err
	}
	p, _ := Priority(item)
	return p, nil
}

// Badge returns the single item present in every line of a group.
func Badge(lines []string) (byte, error) {
	if len(lines) == 0 {
		return 0, puzzle.NewValidationError("badge group is empty")
	}
	invs := make([]Inventory, len(lines))
	for i, l := range lines {
		inv, err := ParseInventory(l)
		if err != nil {
			return 0, err
		}
		invs[i] = inv
	}
	return single(Intersect(invs...), "group members")
}

// BadgePriority returns the priority of a group's badge.
func BadgePriority(lines []string) (uint64, error) {
	item, err := Badge(lines)
	if err != nil {
		return 0, err
	}
	p, _ := Priority(item)
	return p, nil
}

func single(common []byte, between string) (byte, error) {
	switch len(common) {
	case 1:
		return common[0], nil
	case 0:
		return 0, puzzle.NewValidationError("no item shared by all %s", between)
	default:
		return 0, puzzle.NewValidationError("%d items shared by all %s (%q), want exactly one",
			len(common), between, string(common))
	}
}
