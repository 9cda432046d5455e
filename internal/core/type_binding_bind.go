package core

import (
	"reflect"

	"github.com/ygrebnov/params/errors"
	"github.com/ygrebnov/params/paramset"
)

// pendingWrite is a coerced value waiting to be assigned.
type pendingWrite struct {
	field *Field
	value reflect.Value
	raw   any
}

// Bind writes the parameters of ps into target, an addressable value of the
// binding's struct type. Every parameter is resolved, checked and coerced
// before the first field is written, so a failed bind leaves target as it was.
// The only exception is a field setter that itself fails during the writes.
func (tb *TypeBinding) Bind(target reflect.Value, ps paramset.ParameterSet) error {
	var (
		writes    []pendingWrite
		satisfied uint32
		err       error
	)
	if tb.catchAll == nil {
		writes, satisfied, err = tb.planStrict(ps)
	} else {
		writes, satisfied, err = tb.planCapturing(ps)
	}
	if err != nil {
		return err
	}
	if satisfied != tb.requiredMask {
		ordinary, cascading := tb.missing(satisfied)
		return missingError(tb.typ, ordinary, cascading)
	}
	return tb.commit(target, writes)
}

// planStrict walks ps for a type without a catch-all field.
func (tb *TypeBinding) planStrict(ps paramset.ParameterSet) ([]pendingWrite, uint32, error) {
	var (
		writes    []pendingWrite
		satisfied uint32
	)
	for p := range ps.All() {
		f := tb.Resolve(p.Name)
		if f == nil {
			return nil, 0, unknownParameterError(tb.typ, p.Name)
		}
		if err := tb.checkOrigin(f, p); err != nil {
			return nil, 0, err
		}
		w, err := tb.prepare(f, p.Value)
		if err != nil {
			return nil, 0, err
		}
		writes = append(writes, w)
		satisfied |= f.bit()
	}
	return writes, satisfied, nil
}

// planCapturing walks ps for a type with a catch-all field. Ordinary values
// that match nothing, or that collide with a cascading field, are collected
// and written into the catch-all field after the walk.
func (tb *TypeBinding) planCapturing(ps paramset.ParameterSet) ([]pendingWrite, uint32, error) {
	var (
		writes    []pendingWrite
		satisfied uint32
		extra     unmatched
		explicit  bool
	)
	for p := range ps.All() {
		f := tb.Resolve(p.Name)
		switch {
		case f == nil:
			if p.Cascading {
				return nil, 0, originError(errors.ErrOrdinaryParameterSetWithCascadingValue, tb.typ, p.Name)
			}
			extra.add(p.Name, fold(p.Name), p.Value)
			continue
		case f.origin == OriginCascading && !p.Cascading:
			extra.add(p.Name, f.folded, p.Value)
			continue
		case f == tb.catchAll:
			explicit = true
		}

		if err := tb.checkOrigin(f, p); err != nil {
			return nil, 0, err
		}
		w, err := tb.prepare(f, p.Value)
		if err != nil {
			return nil, 0, err
		}
		writes = append(writes, w)
		satisfied |= f.bit()
	}

	if extra.size() == 0 {
		return writes, satisfied, nil
	}
	if explicit {
		return nil, 0, unmatchedConflictError(tb.typ, tb.catchAll.name, extra.names())
	}
	w, err := tb.prepare(tb.catchAll, extra.toMap())
	if err != nil {
		return nil, 0, err
	}
	return append(writes, w), satisfied | tb.catchAll.bit(), nil
}

func (tb *TypeBinding) checkOrigin(f *Field, p paramset.Parameter) error {
	switch {
	case f.origin == OriginCascading && !p.Cascading:
		return originError(errors.ErrCascadingParameterSetWithNonCascadingValue, tb.typ, f.name)
	case f.origin != OriginCascading && p.Cascading:
		return originError(errors.ErrOrdinaryParameterSetWithCascadingValue, tb.typ, f.name)
	}
	return nil
}

func (tb *TypeBinding) prepare(f *Field, value any) (pendingWrite, error) {
	v, err := f.prepare(value)
	if err != nil {
		return pendingWrite{}, assignmentError(tb.typ, f, value, err)
	}
	return pendingWrite{field: f, value: v, raw: value}, nil
}

func (tb *TypeBinding) commit(target reflect.Value, writes []pendingWrite) error {
	for _, w := range writes {
		if err := w.field.assign(target, w.value); err != nil {
			return assignmentError(tb.typ, w.field, w.raw, err)
		}
	}
	return nil
}
