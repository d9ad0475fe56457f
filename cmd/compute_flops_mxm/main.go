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

//////////////////////////////////////////////////////////////////////
///
/// NAME:    compute_flops_mxm
///
/// PURPOSE: This program estimates the floating point rate of a dense
///          matrix-matrix multiplication from the matrix order and
///          the measured kernel time.
///
/// USAGE:   compute_flops_mxm --size <matrix order> --time <nanoseconds>
///
///          The output is a single line, "GigaGlops: <rate>", with the
///          rate rounded to two decimal places.
///
//////////////////////////////////////////////////////////////////////

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"flopsmxm/internal/flops"
)

const (
	progName    = "compute_flops_mxm"
	description = "Compute the Floating Point Operations per Second for the matrix multiplication given the time and the input matrix size"
)

// optFloat is a float flag that remembers whether it was given.
type optFloat struct {
	v   float64
	set bool
}

func (f *optFloat) String() string {
	if f == nil || !f.set {
		return ""
	}
	return strconv.FormatFloat(f.v, 'g', -1, 64)
}

func (f *optFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("invalid float value")
	}
	f.v, f.set = v, true
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {

	//////////////////////////////////////////////////////////////////////
	/// Read and test input parameters
	//////////////////////////////////////////////////////////////////////

	var size, timeNs optFloat

	// Parse diagnostics are held back until it is known whether help was
	// asked for; help goes to stdout, everything else to stderr.
	var parseOut bytes.Buffer

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(&parseOut)
	fs.Var(&size, "size", "Set the input matrix `size` (size x size)")
	fs.Var(&timeNs, "time", "Set the `time` in nanoseconds (ns)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s --size <matrix order> --time <nanoseconds>\n\n", progName)
		fmt.Fprintf(fs.Output(), "%s\n\n", description)
		fs.PrintDefaults()
	}

	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		stdout.Write(parseOut.Bytes())
		return 0
	}
	stderr.Write(parseOut.Bytes())
	fs.SetOutput(stderr)
	if err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintln(stderr, "ERROR: unexpected arguments:", fs.Args())
		fs.Usage()
		return 2
	}
	if !size.set {
		fmt.Fprintln(stderr, "ERROR: --size is required")
		fs.Usage()
		return 2
	}
	if !timeNs.set {
		fmt.Fprintln(stderr, "ERROR: --time is required")
		fs.Usage()
		return 2
	}

	//////////////////////////////////////////////////////////////////////
	/// Analyze and output results
	//////////////////////////////////////////////////////////////////////

	if _, err := flops.Report(stdout, size.v, timeNs.v); err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
