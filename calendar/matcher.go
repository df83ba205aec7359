// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

// Matcher is implemented by types that can test whether the
// information held by a Calendrical satisfies some condition.
// Matches returns an error only if cal is nil; a Calendrical that
// lacks the information required to evaluate the condition does
// not match.
type Matcher interface {
	Matches(cal Calendrical) (bool, error)
}

// MatcherFunc is an adapter to allow the use of ordinary functions as
// Matchers.
type MatcherFunc func(cal Calendrical) bool

// Matches implements Matcher.
func (f MatcherFunc) Matches(cal Calendrical) (bool, error) {
	if cal == nil {
		return false, nilArgument("calendrical")
	}
	return f(cal), nil
}

// Matches returns true if the value of rule, held by or derived from
// cal, is equal to value. It returns false if the value cannot be
// obtained from cal.
func Matches(rule Rule, value int, cal Calendrical) (bool, error) {
	if rule == nil {
		return false, nilArgument("rule")
	}
	if cal == nil {
		return false, nilArgument("calendrical")
	}
	v, ok := lookup(rule, cal)
	return ok && v == value, nil
}

// MatchAll returns a Matcher that matches when all of the supplied
// matchers match. It matches everything if no matchers are supplied.
func MatchAll(matchers ...Matcher) Matcher {
	return all(matchers)
}

// MatchAny returns a Matcher that matches when any of the supplied
// matchers match. It matches nothing if no matchers are supplied.
func MatchAny(matchers ...Matcher) Matcher {
	return anyOf(matchers)
}

type all []Matcher

func (ms all) Matches(cal Calendrical) (bool, error) {
	if cal == nil {
		return false, nilArgument("calendrical")
	}
	for _, m := range ms {
		ok, err := m.Matches(cal)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

type anyOf []Matcher

func (ms anyOf) Matches(cal Calendrical) (bool, error) {
	if cal == nil {
		return false, nilArgument("calendrical")
	}
	for _, m := range ms {
		ok, err := m.Matches(cal)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
