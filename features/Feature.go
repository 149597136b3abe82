// Package features describes the feature layers that a StarCraft II
// environment exposes as minimap and screen observations. Each layer
// is described by a Feature, and the ordered set of layers of a single
// observation stack is described by an immutable Table.
package features

import (
	"fmt"
	"strings"
)

// FeatureType denotes how the raw integer values of a feature layer
// should be interpreted, either as linearly meaningful scalars or as
// category ids
type FeatureType int

const (
	Scalar FeatureType = iota
	Categorical
)

// String returns the name of the FeatureType
func (f FeatureType) String() string {
	switch f {
	case Scalar:
		return "SCALAR"
	case Categorical:
		return "CATEGORICAL"
	default:
		return fmt.Sprintf("FeatureType(%d)", int(f))
	}
}

// ParseFeatureType converts a string into a FeatureType. Parsing is
// case insensitive.
func ParseFeatureType(s string) (FeatureType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SCALAR":
		return Scalar, nil
	case "CATEGORICAL":
		return Categorical, nil
	}
	return 0, fmt.Errorf("parsefeaturetype: unknown feature type %q", s)
}

// Feature describes a single feature layer of an observation stack.
//
// For Scalar features, Scale is the divisor used to normalize the raw
// layer. For Categorical features, Scale is the number of categories,
// and raw values lie in [0, Scale).
type Feature struct {
	Index int
	Name  string
	Type  FeatureType
	Scale int
}

// String returns a string representation of the Feature
func (f Feature) String() string {
	return fmt.Sprintf("Feature | %d: %v (%v, scale %d)", f.Index, f.Name,
		f.Type, f.Scale)
}
