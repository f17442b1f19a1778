package codec

import "math"

func int32bitsToFloat32(v int32) float32 { return math.Float32frombits(uint32(v)) } //nolint:gosec // reinterpreting bits, not converting value
func int64bitsToFloat64(v int64) float64 { return math.Float64frombits(uint64(v)) } //nolint:gosec // reinterpreting bits, not converting value
func float32bitsToInt32(v float32) int32 { return int32(math.Float32bits(v)) }       //nolint:gosec // reinterpreting bits, not converting value
func float64bitsToInt64(v float64) int64 { return int64(math.Float64bits(v)) }       //nolint:gosec // reinterpreting bits, not converting value
