package iteratable

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSetInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.set")
	defer teardown()
	//
	set := NewSet(0)
	if !set.Insert("foo") {
		t.Errorf("Expected insert of new element to report true, didn't")
	}
	if set.Insert("foo") {
		t.Errorf("Expected duplicate insert to report false, didn't")
	}
	if set.Size() != 1 {
		t.Errorf("Expected set of size 1 after duplicate insert, have %d", set.Size())
	}
	if !set.Contains("foo") {
		t.Errorf("Expected set to contain \"foo\", doesn't")
	}
}

func TestSetRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.set")
	defer teardown()
	//
	set := NewSet(0)
	set.Insert("foo")
	set.Insert("bar")
	if set.Remove("baz") {
		t.Errorf("Expected removal of non-member to report false, didn't")
	}
	if !set.Remove("foo") {
		t.Errorf("Expected removal of member to report true, didn't")
	}
	if set.Size() != 1 || set.Contains("foo") {
		t.Errorf("Expected set to hold just \"bar\", doesn't: %v", set.Values())
	}
}

func TestIterEmptySet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.set")
	defer teardown()
	//
	set := NewSet(0)
	it := set.Iter()
	if el, ok := it.Next(); ok {
		t.Errorf("Expected iterator over empty set to be exhausted, got %v", el)
	}
}

func TestIterYieldsAllOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.set")
	defer teardown()
	//
	set := NewSet(0)
	set.Insert("foo")
	set.Insert("bar")
	set.Insert("baz")
	seen := collect(t, set.Iter())
	if len(seen) != 3 {
		t.Fatalf("Expected full pass to yield 3 elements, got %d", len(seen))
	}
	for _, key := range []string{"foo", "bar", "baz"} {
		if seen[key] != 1 {
			t.Errorf("Expected %q to be yielded exactly once, was yielded %d times", key, seen[key])
		}
	}
}

func TestIterSingleElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.set")
	defer teardown()
	//
	set := NewSet(0)
	set.Insert("onething")
	for pass := 1; pass <= 3; pass++ {
		it := set.Iter()
		el, ok := it.Next()
		if !ok || el != "onething" {
			t.Errorf("Pass %d: expected \"onething\", got %v", pass, el)
		}
		if _, ok := it.Next(); ok {
			t.Errorf("Pass %d: expected exhaustion after single element", pass)
		}
	}
}

// An iterator which is created but never read must not move the cursor.
func TestUnusedIterKeepsPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.set")
	defer teardown()
	//
	set := NewSet(0)
	set.Insert("one")
	set.Insert("two")
	first, _ := set.Iter().Next()
	_ = set.Iter() // never read
	second, _ := set.Iter().Next()
	if first == second {
		t.Errorf("Expected cursor to have moved past %v, hasn't", first)
	}
}

// A pass abandoned after k elements must not lose progress: the next
// iterator continues with the remaining n-k elements before wrapping.
func TestIterResumesAfterAbandonedPass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.set")
	defer teardown()
	//
	set := NewSet(0)
	set.Insert("foo")
	set.Insert("bar")
	set.Insert("baz")
	order := set.Values() // snapshot order drives the cursor
	//
	el, _ := set.Iter().Next() // consume 1 element, abandon the iterator
	if el != order[0] {
		t.Fatalf("Expected first pass to start at %v, got %v", order[0], el)
	}
	it := set.Iter() // fresh pass resumes at position 1
	for i := 1; i <= 2; i++ {
		if el, _ = it.Next(); el != order[i] {
			t.Errorf("Expected resumed pass to yield %v, got %v", order[i], el)
		}
	}
	if el, _ = it.Next(); el != order[0] { // wraps around
		t.Errorf("Expected resumed pass to wrap to %v, got %v", order[0], el)
	}
	if _, ok := it.Next(); ok {
		t.Errorf("Expected pass to be exhausted after 3 elements")
	}
}

// A pass over n elements yields exactly n, with no duplicates within the
// pass, wherever the cursor starts.
func TestIterWrapsOnlyOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.set")
	defer teardown()
	//
	set := NewSet(0)
	for _, el := range []interface{}{1, 2, 3, 4, 5} {
		set.Insert(el)
	}
	set.Iter().Next() // move the cursor mid-set
	set.Iter().Next()
	seen := collect(t, set.Iter())
	if len(seen) != 5 {
		t.Fatalf("Expected pass to yield 5 distinct elements, got %d", len(seen))
	}
	for el, count := range seen {
		if count != 1 {
			t.Errorf("Expected %v once per pass, was yielded %d times", el, count)
		}
	}
}

// A held iterator may be re-used after exhaustion and starts a fresh pass.
func TestIterRestartsAfterExhaustion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.set")
	defer teardown()
	//
	set := NewSet(0)
	set.Insert("one")
	set.Insert("two")
	it := set.Iter()
	for i := 0; i < 2; i++ {
		if _, ok := it.Next(); !ok {
			t.Fatalf("Expected 2 elements in first pass, got %d", i)
		}
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("Expected exhaustion after first pass")
	}
	count := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		count++
	}
	if count != 2 {
		t.Errorf("Expected re-used iterator to run a full second pass, yielded %d", count)
	}
}

// Removing elements may leave the cursor beyond the shrunken snapshot; the
// next iterator has to clamp it back to the start and still yield every
// remaining element exactly once.
func TestIterClampsCursorAfterRemoval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.set")
	defer teardown()
	//
	set := NewSet(0)
	for _, el := range []interface{}{"a", "b", "c", "d", "e"} {
		set.Insert(el)
	}
	it := set.Iter() // move the cursor to position 4
	for i := 0; i < 4; i++ {
		it.Next()
	}
	set.Remove("a")
	set.Remove("b") // snapshot shrinks to 3, cursor still at 4
	seen := collect(t, set.Iter())
	if len(seen) != 3 {
		t.Fatalf("Expected pass over shrunken set to yield 3 elements, got %d", len(seen))
	}
	for _, key := range []string{"c", "d", "e"} {
		if seen[key] != 1 {
			t.Errorf("Expected %q to be yielded exactly once, was yielded %d times", key, seen[key])
		}
	}
}

func TestIterAfterRemoveToEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.set")
	defer teardown()
	//
	set := NewSet(0)
	set.Insert("foo")
	set.Iter().Next()
	set.Remove("foo")
	if el, ok := set.Iter().Next(); ok {
		t.Errorf("Expected iterator over emptied set to be exhausted, got %v", el)
	}
}

// collect runs an iterator to exhaustion and counts the yielded elements.
func collect(t *testing.T, it *Iterator) map[interface{}]int {
	seen := make(map[interface{}]int)
	for i := 0; ; i++ {
		el, ok := it.Next()
		if !ok {
			return seen
		}
		seen[el]++
		if i > 100 {
			t.Fatalf("Iterator does not terminate")
		}
	}
}
