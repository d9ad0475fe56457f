///
/// Copyright (c) 2020, Intel Corporation
///
/// Redistribution and use in source and binary forms, with or without
/// modification, are permitted provided that the following conditions
/// are met:
///
/// * Redistributions of source code must retain the above copyright
///       notice, this list of conditions and the following disclaimer.
/// * Redistributions in binary form must reproduce the above
///       copyright notice, this list of conditions and the following
///       disclaimer in the documentation and/or other materials provided
///       with the distribution.
/// * Neither the name of Intel Corporation nor the names of its
///       contributors may be used to endorse or promote products
///       derived from this software without specific prior written
///       permission.
///
/// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
/// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
/// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS
/// FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE
/// COPYRIGHT OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT,
/// INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
/// BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;
/// LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
/// CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT
/// LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN
/// ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
/// POSSIBILITY OF SUCH DAMAGE.

// Package flops turns a matrix order and a measured kernel time into a
// GigaFLOPS figure for dense matrix-matrix multiplication.
package flops

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Label prefixes the reported line. The spelling is part of the output
// format that downstream scripts scrape.
const Label = "GigaGlops: "

const (
	opsPerTerm = 2.0
	gigaScale  = 1.0e-9
	timeScale  = 1.0e9
	precision  = 2
)

var (
	ErrZeroTime = errors.New("time must be non-zero")
	ErrOverflow = errors.New("operation count out of range")
)

// MatmulOps is the floating point operation count of one order x order
// matrix multiply: one multiply and one add per inner product term.
func MatmulOps(order float64) float64 {
	return opsPerTerm * math.Pow(order, 3)
}

// Compute returns the unrounded GigaFLOPS rate for a multiply of the given
// order that took timeNs nanoseconds. Negative inputs are not rejected.
func Compute(order, timeNs float64) (float64, error) {
	cube := math.Pow(order, 3)
	if math.IsInf(cube, 0) && !math.IsInf(order, 0) {
		return 0, fmt.Errorf("%w: order %g", ErrOverflow, order)
	}
	seconds := timeNs / timeScale
	if seconds == 0 {
		return 0, fmt.Errorf("%w: %g ns", ErrZeroTime, timeNs)
	}
	return (gigaScale * (opsPerTerm * cube)) / seconds, nil
}

// Round rounds the exact binary value of v to two decimal places, with
// exact ties going to even. The sign of a zero result follows v.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', precision, 64), 64)
	if err != nil {
		return v
	}
	if r == 0 {
		return math.Copysign(0, v)
	}
	return r
}

// Gigaflops is Compute followed by Round.
func Gigaflops(order, timeNs float64) (float64, error) {
	gf, err := Compute(order, timeNs)
	if err != nil {
		return 0, err
	}
	return Round(gf), nil
}

// Format renders v with the shortest digits that round trip, always keeping
// a fractional part. Magnitudes of 1e16 and above, or below 1e-4, switch to
// exponent form.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Report writes the rounded rate as a single line to w. Nothing is written
// when the rate cannot be computed.
func Report(w io.Writer, order, timeNs float64) (float64, error) {
	gf, err := Gigaflops(order, timeNs)
	if err != nil {
		return 0, err
	}
	if _, err := fmt.Fprintln(w, Label+Format(gf)); err != nil {
		return 0, err
	}
	return gf, nil
}
