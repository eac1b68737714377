package iteratable

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
)

// Set is a set of unique elements which remembers the position of its
// iteration cursor across iterators. Iterating over a Set will yield every
// element currently held at most once, resuming at the position where the
// previous iterator stopped, and wrapping around at the end.
//
// The zero position is the start of an internal ordered snapshot of the
// elements. No promise is made about the enumeration order of that
// snapshot; it is whatever the backing set produces.
type Set struct {
	members *hashset.Set  // uniqueness index
	ordered []interface{} // positional snapshot of members, drives iteration
	cursor  int           // where the next iterator will resume; 0 ≤ cursor ≤ len(ordered)
}

// NewSet creates an empty Set. size is a capacity hint for the expected
// number of elements; clients may simply provide 0.
func NewSet(size int) *Set {
	if size < 0 {
		size = 0
	}
	return &Set{
		members: hashset.New(),
		ordered: make([]interface{}, 0, size),
	}
}

// Insert adds an element to the set. If el is already a member, the set is
// left unchanged and Insert returns false. The cursor is not moved: a newly
// inserted element becomes reachable for iterators once the cursor wraps
// past its position.
func (s *Set) Insert(el interface{}) bool {
	if s.members.Contains(el) {
		return false
	}
	s.members.Add(el)
	s.ordered = append(s.ordered, el)
	return true
}

// Remove removes an element from the set, returning true if it had been a
// member. The positional snapshot is rebuilt from the remaining members,
// i.e. the relative order of the survivors may change (no enumeration
// order is promised anyway). The cursor is left untouched numerically and
// re-clamped by the next iterator, which therefore may resume at a
// different logical position than before the removal.
func (s *Set) Remove(el interface{}) bool {
	if !s.members.Contains(el) {
		return false
	}
	s.members.Remove(el)
	s.ordered = s.members.Values()
	return true
}

// Contains checks set membership.
func (s *Set) Contains(el interface{}) bool {
	return s.members.Contains(el)
}

// Size returns the number of elements in the set.
func (s *Set) Size() int {
	return len(s.ordered)
}

// Empty is a predicate: does the set contain any elements?
func (s *Set) Empty() bool {
	return len(s.ordered) == 0
}

// Values returns the elements of the set as a slice, in snapshot order,
// starting at position 0 (not at the cursor).
func (s *Set) Values() []interface{} {
	vals := make([]interface{}, len(s.ordered))
	copy(vals, s.ordered)
	return vals
}

func (s *Set) String() string {
	return fmt.Sprintf("set of %d, cursor at %d", len(s.ordered), s.cursor)
}

// --- Iteration -------------------------------------------------------------

// Iterator is a single pass over the elements of a Set. It advances the
// persistent cursor of the underlying set, but bounds itself with a
// pass-local counter: it signals exhaustion as soon as it has yielded
// every element currently held, leaving the cursor in place for the next
// iterator to resume from.
//
// An earlier design shared the counter between iterators, too. That leaks
// partial consumption into the next client: abandon an iterator after one
// element and the next iterator's pass is cut short. Keeping the counter
// pass-local is what makes abandoning an iterator at any point safe.
type Iterator struct {
	set      *Set
	produced int
}

// Iter creates an iterator over the elements of the set, resuming at the
// set's cursor position.
//
// The iterator borrows the set exclusively: the set must not be mutated,
// nor a second iterator created, until the client is done with it.
// Abandoning an iterator before exhaustion is always safe and keeps the
// progress made so far.
func (s *Set) Iter() *Iterator {
	return &Iterator{set: s}
}

// Next returns the next element of the pass, or (nil, false) if the pass
// is exhausted. A pass over a set of n elements yields exactly n elements,
// each one once, wrapping around at the end of the snapshot.
func (it *Iterator) Next() (interface{}, bool) {
	s := it.set
	n := len(s.ordered)
	if n == 0 {
		s.cursor = 0
		return nil, false
	}
	if s.cursor >= n { // cursor beyond the snapshot: wrap
		s.cursor = 0
	}
	it.produced++
	if it.produced > n {
		// every currently held element has been yielded once;
		// leave the cursor for the next iterator to pick up
		it.produced = 0
		return nil, false
	}
	el := s.ordered[s.cursor]
	s.cursor++
	return el, true
}
