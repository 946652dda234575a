// Copyright 2026 The gpp-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import "fmt"

// CondState is one conditional-stack cell (spec.md §3 "Conditional stack").
type CondState int

const (
	// Emitting: text at this level is passed through.
	Emitting CondState = iota
	// Skipping: a condition in this #if/#elif chain is currently false.
	Skipping
	// Latched: some branch of this #if/#elif chain already evaluated
	// true; further #elif/#else at this level must not re-enable output.
	Latched
)

// StackDepth bounds conditional nesting, include depth, parse recursion
// depth and macro argument count alike (spec.md §5 "Bounds"; originally
// 50-128, gpp.c uses 50 for STACKDEPTH).
const StackDepth = 64

// ConditionalStack is the fixed-depth `commented[]`/`iflevel` array of
// spec.md §3.
type ConditionalStack struct {
	levels [StackDepth]CondState
	// elseSeen marks that #else already fired at that level, so a later
	// #elif in the same chain is rejected rather than silently accepted.
	elseSeen [StackDepth]bool
	level    int
}

// Emitting reports whether output is currently enabled, i.e. every
// enclosing level is CondState Emitting (spec.md invariant 4: no macro
// expansion occurs while any enclosing level is non-zero/non-Emitting).
func (c *ConditionalStack) Emitting() bool {
	for i := 0; i <= c.level; i++ {
		if c.levels[i] != Emitting {
			return false
		}
	}
	return true
}

// Level returns the current nesting depth (spec.md's iflevel).
func (c *ConditionalStack) Level() int { return c.level }

// PushIf starts a new `#if`/`#ifdef`/`#ifndef` level. A condition that is
// true inherits emission from the parent (spec.md "#ifdef/#ifndef ... Push
// new commented level; record truth (inherits commented[parent])"); a
// false condition always skips regardless of the parent, since the parent
// gates whether this level is even reachable as output.
func (c *ConditionalStack) PushIf(condTrue bool) error {
	if c.level+1 >= StackDepth {
		return fmt.Errorf("conditional nesting exceeds depth %d", StackDepth)
	}
	c.level++
	c.elseSeen[c.level] = false
	parentEmitting := true
	for i := 0; i < c.level; i++ {
		if c.levels[i] != Emitting {
			parentEmitting = false
			break
		}
	}
	switch {
	case !parentEmitting:
		c.levels[c.level] = Skipping
	case condTrue:
		c.levels[c.level] = Emitting
	default:
		c.levels[c.level] = Skipping
	}
	return nil
}

// Elif re-tests the current level's condition, unless a previous branch of
// the same chain already evaluated true (Latched): "#elif does not re-test
// once a previous branch of the same if-chain has evaluated truthy"
// (spec.md §5 "Ordering").
func (c *ConditionalStack) Elif(condTrue bool) error {
	if c.level == 0 {
		return fmt.Errorf("#elif without matching #if")
	}
	if c.elseSeen[c.level] {
		return fmt.Errorf("#elif after #else")
	}
	switch c.levels[c.level] {
	case Latched:
		// Already taken a branch; stay latched regardless of condTrue.
	case Emitting:
		c.levels[c.level] = Latched
	case Skipping:
		if condTrue {
			c.levels[c.level] = Emitting
		}
	}
	return nil
}

// Else toggles the current level, unless latched (spec.md "#else. Toggle
// current level (unless latched)").
func (c *ConditionalStack) Else() error {
	if c.level == 0 {
		return fmt.Errorf("#else without matching #if")
	}
	switch c.levels[c.level] {
	case Emitting:
		c.levels[c.level] = Latched
	case Skipping:
		c.levels[c.level] = Emitting
	case Latched:
		// stays latched
	}
	c.elseSeen[c.level] = true
	return nil
}

// Endif pops one level. Popping below level 0 is a fatal error (spec.md
// "endif. Pop one level. iflevel == 0 on underflow is an error").
func (c *ConditionalStack) Endif() error {
	if c.level == 0 {
		return fmt.Errorf("#endif without matching #if")
	}
	c.level--
	return nil
}
