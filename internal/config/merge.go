package config

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrDuplicateSingleton is returned when two host files both define a
// source that may only be defined once.
var ErrDuplicateSingleton = errors.New("defined more than once")

// Merge folds other into m. Option tables are merged key by key, unit lists
// are appended in order, and parse options and compilation metadata may be
// set by at most one of the two models.
func (m *Model) Merge(other *Model) error {
	if other == nil {
		return nil
	}

	m.GlobalOptions.Merge(other.GlobalOptions)
	m.AdditionalTexts = append(m.AdditionalTexts, other.AdditionalTexts...)
	m.SyntaxTrees = append(m.SyntaxTrees, other.SyntaxTrees...)

	if !isZero(other.ParseOptions) {
		if !isZero(m.ParseOptions) {
			return fmt.Errorf("parse_options %w", ErrDuplicateSingleton)
		}
		m.ParseOptions = other.ParseOptions
	}
	if !isZero(other.Compilation) {
		if !isZero(m.Compilation) {
			return fmt.Errorf("compilation %w", ErrDuplicateSingleton)
		}
		m.Compilation = other.Compilation
	}
	return nil
}

func isZero(v any) bool {
	return reflect.ValueOf(v).IsZero()
}
