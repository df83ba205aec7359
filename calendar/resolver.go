// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"io"
	"log/slog"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/errors"
)

// State represents the state of a Calendrical with respect to resolution.
type State int

const (
	// Empty indicates that no date, time or field values are present.
	Empty State = iota
	// Partial indicates consistent information that is insufficient to
	// determine either a date or a time.
	Partial
	// Complete indicates consistent information from which a date and/or
	// a time can be unambiguously determined.
	Complete
	// Conflicting indicates that the information is inconsistent or invalid.
	Conflicting
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Partial:
		return "partial"
	case Complete:
		return "complete"
	case Conflicting:
		return "conflicting"
	}
	return "unknown"
}

type options struct {
	logger *slog.Logger
}

// Option represents an option to NewResolver.
type Option func(o *options)

// WithLogger specifies the logger to use for debug level logging of
// the resolution process.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Resolver validates and reconciles calendrical information using the
// rules of a Chronology. A Resolver holds no mutable state and may be
// used concurrently.
type Resolver struct {
	chrono Chronology
	logger *slog.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewResolver returns a Resolver for the specified chronology.
func NewResolver(chrono Chronology, opts ...Option) *Resolver {
	o := options{logger: discardLogger}
	for _, fn := range opts {
		fn(&o)
	}
	return &Resolver{chrono: chrono, logger: o.logger}
}

// Chronology returns the chronology used by the resolver.
func (r *Resolver) Chronology() Chronology {
	return r.chrono
}

// Resolve validates the information held by cal and derives a date and
// a time of day from its fields where possible. A date or time held by
// cal is authoritative: fields are checked against it and never override
// it. All inconsistencies are reported, each as a ConflictError. The
// returned Fields has the resolved date and/or time attached.
func (r *Resolver) Resolve(cal Calendrical) (Fields, error) {
	if cal == nil {
		return Fields{}, nilArgument("calendrical")
	}
	if r.chrono == nil {
		return Fields{}, nilArgument("chronology")
	}
	f, err := FieldsFrom(cal, r.chrono)
	if err != nil {
		r.logger.Debug("resolve: invalid fields", "error", err)
		return Fields{}, err
	}
	return r.resolve(f)
}

func (r *Resolver) resolve(f Fields) (Fields, error) {
	errs := &errors.M{}
	if !f.hasDate {
		d, ok, err := r.chrono.ResolveDate(f)
		switch {
		case err != nil:
			errs.Append(err)
		case ok:
			r.logger.Debug("resolve: date", "date", d.String(), "fields", f.String())
			nf, err := f.WithDate(d)
			errs.Append(err)
			if err == nil {
				f = nf
			}
		}
	}
	if !f.hasTime {
		t, ok, err := r.chrono.ResolveTime(f)
		switch {
		case err != nil:
			errs.Append(err)
		case ok:
			r.logger.Debug("resolve: time", "time", t.String(), "fields", f.String())
			nf, err := f.WithTime(t)
			errs.Append(err)
			if err == nil {
				f = nf
			}
		}
	}
	if err := errs.Err(); err != nil {
		r.logger.Debug("resolve: failed", "fields", f.String(), "error", err)
		return Fields{}, err
	}
	return f, nil
}

// State returns the state of cal after resolution.
func (r *Resolver) State(cal Calendrical) State {
	f, err := r.Resolve(cal)
	switch {
	case err != nil:
		return Conflicting
	case f.hasDate || f.hasTime:
		return Complete
	case f.IsEmpty():
		return Empty
	}
	return Partial
}

type mergeEntry struct {
	value  Value
	source int
}

// Merge combines the information held by all of the supplied
// calendricals and resolves the result. Values are considered in the
// order of the chronology's rules, and for the same rule in the order
// in which the calendricals are supplied; the first date and first time
// encountered are authoritative. Any disagreement is reported as a
// conflict rather than being resolved in favour of either value.
func (r *Resolver) Merge(cals ...Calendrical) (Fields, error) {
	if r.chrono == nil {
		return Fields{}, nilArgument("chronology")
	}
	rules := r.chrono.Rules()
	h := heap.NewMin(heap.WithSliceCap[int, mergeEntry](len(cals) * 2))
	errs := &errors.M{}
	var merged Fields
	for i, cal := range cals {
		if cal == nil {
			return Fields{}, nilArgument("calendrical")
		}
		if d, ok := cal.Date(); ok {
			nf, err := merged.WithDate(d)
			errs.Append(err)
			merged = nf
		}
		if t, ok := cal.Time(); ok {
			nf, err := merged.WithTime(t)
			errs.Append(err)
			merged = nf
		}
		for rank, rule := range rules {
			v, ok := cal.Field(rule)
			if !ok {
				continue
			}
			fv, err := NewValue(rule, v)
			if err != nil {
				errs.Append(err)
				continue
			}
			h.Push(rank*len(cals)+i, mergeEntry{value: fv, source: i})
		}
	}
	for h.Len() > 0 {
		_, e := h.Pop()
		nf, err := merged.With(e.value)
		if err != nil {
			r.logger.Debug("merge: conflict", "value", e.value.String(), "source", e.source, "error", err)
			errs.Append(err)
			continue
		}
		merged = nf
	}
	if err := errs.Err(); err != nil {
		return Fields{}, err
	}
	return r.resolve(merged)
}
