// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
	"strings"
)

// WeightType names the concrete type behind a Weight type parameter.
type WeightType string

const (
	WeightInt     WeightType = "int"
	WeightInt32   WeightType = "int32"
	WeightInt64   WeightType = "int64"
	WeightFloat32 WeightType = "float32"
	WeightFloat64 WeightType = "float64"
)

// WeightTypeOf reports the WeightType of W.
func WeightTypeOf[W Weight]() WeightType {
	var zero W
	switch any(zero).(type) {
	case int:
		return WeightInt
	case int32:
		return WeightInt32
	case int64:
		return WeightInt64
	case float32:
		return WeightFloat32
	default:
		return WeightFloat64
	}
}

// ParseWeightType accepts the Go type names plus the aliases "integer",
// "float" and "double". The empty string means float64.
func ParseWeightType(s string) (WeightType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int":
		return WeightInt, nil
	case "int32":
		return WeightInt32, nil
	case "int64", "integer":
		return WeightInt64, nil
	case "float32":
		return WeightFloat32, nil
	case "float64", "float", "double", "":
		return WeightFloat64, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeightType, s)
}

// IsInteger reports whether W is an integer type.
func IsInteger[W Weight]() bool {
	switch WeightTypeOf[W]() {
	case WeightFloat32, WeightFloat64:
		return false
	default:
		return true
	}
}

// IsFinite reports whether w is neither NaN nor an infinity. Integer
// weights are always finite.
func IsFinite[W Weight](w W) bool {
	f := float64(w)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MaxWeight returns the largest finite value of W. Codecs use it as the
// "unreached" distance on the wire, so no reachable distance may equal it.
func MaxWeight[W Weight]() W {
	var v any
	switch WeightTypeOf[W]() {
	case WeightInt:
		v = int(math.MaxInt)
	case WeightInt32:
		v = int32(math.MaxInt32)
	case WeightInt64:
		v = int64(math.MaxInt64)
	case WeightFloat32:
		v = float32(math.MaxFloat32)
	default:
		v = float64(math.MaxFloat64)
	}
	return v.(W)
}
