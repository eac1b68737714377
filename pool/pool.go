package pool

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/iteratable"
)

// Pool is a round-robin collection of members. Members are stored under a
// content fingerprint, so arbitrary descriptor structs may be pooled,
// including ones which would not be legal map keys themselves. Cycling
// order and resume behavior come from a wrapping iteratable.Set over the
// fingerprint keys.
type Pool struct {
	keys    *iteratable.Set        // wrapping set of fingerprint keys
	members map[string]interface{} // fingerprint → member
	current *iteratable.Iterator   // pass in progress, nil between passes
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{
		keys:    iteratable.NewSet(0),
		members: make(map[string]interface{}),
	}
}

// Add puts a member into the pool, returning its fingerprint key. Adding a
// member with identical content is a no-op, reported by added=false.
// Members which cannot be fingerprinted are rejected with an empty key.
func (p *Pool) Add(member interface{}) (key string, added bool) {
	key, err := structhash.Hash(member, 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint pool member: %v", err)
		return "", false
	}
	if !p.keys.Insert(key) {
		tracer().Debugf("pool already holds member %s", key)
		return key, false
	}
	p.members[key] = member
	p.current = nil // abandon the pass in progress; cursor position is kept
	tracer().Debugf("pool now holds %d members, added %s", p.keys.Size(), key)
	return key, true
}

// Drop removes the member stored under key, returning true if the pool
// held it.
func (p *Pool) Drop(key string) bool {
	if !p.keys.Remove(key) {
		return false
	}
	delete(p.members, key)
	p.current = nil
	tracer().Debugf("pool now holds %d members, dropped %s", p.keys.Size(), key)
	return true
}

// Member returns the member stored under key.
func (p *Pool) Member(key string) (interface{}, bool) {
	member, ok := p.members[key]
	return member, ok
}

// Len returns the number of members in the pool.
func (p *Pool) Len() int {
	return p.keys.Size()
}

// Next deals out the next member in round-robin order. When a pass over
// all members is complete, the next call transparently starts a new pass.
// ok is false only for an empty pool.
func (p *Pool) Next() (member interface{}, ok bool) {
	if p.keys.Empty() {
		return nil, false
	}
	if p.current == nil {
		p.current = p.keys.Iter()
	}
	key, ok := p.current.Next()
	if !ok { // pass complete, start the next one
		p.current = p.keys.Iter()
		if key, ok = p.current.Next(); !ok {
			return nil, false
		}
	}
	return p.members[key.(string)], true
}

// Pass deals out one full pass: every current member exactly once, in
// cycling order starting at the cursor. A pass in progress via Next is
// abandoned, keeping its position.
func (p *Pool) Pass() []interface{} {
	p.current = nil
	members := make([]interface{}, 0, p.keys.Size())
	it := p.keys.Iter()
	for key, ok := it.Next(); ok; key, ok = it.Next() {
		members = append(members, p.members[key.(string)])
	}
	tracer().Debugf("pool pass dealt out %d members", len(members))
	return members
}
