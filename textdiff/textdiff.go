// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package textdiff provides functions to efficiently compare text line by line. It's the one
// collaborator the core diff package is designed to support but never depends on: it sits on top
// of the public API exactly like any other caller would.
package textdiff

import (
	"bytes"
	"fmt"
	"unsafe"

	diff "tokenly.dev/diff"
	"tokenly.dev/diff/internal/byteview"
	"tokenly.dev/diff/internal/config"
)

const reset = "\033[0m"

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format.
//
// The following options are supported: [diff.Context], [diff.Optimal], [diff.WithAlgorithm],
// [IndentHeuristic], [TerminalColors].
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Unified[T string | []byte](x, y T, opts ...diff.Option) T {
	// This lets us support both string and []byte inputs with the same implementation without
	// copying the inputs in or the output out. It's safe because we never modify the inputs or
	// retain the output anywhere that would observe a subsequent mutation.
	xs, ys := byteview.From(x).String(), byteview.From(y).String()
	out := UnifiedBytes(unsafe.Slice(unsafe.StringData(xs), len(xs)), unsafe.Slice(unsafe.StringData(ys), len(ys)), opts)
	if _, ok := any(x).(string); ok {
		return any(unsafe.String(unsafe.SliceData(out), len(out))).(T)
	}
	return any(out).(T)
}

// UnifiedBytes compares the lines in x and y and returns the changes necessary to convert from one
// to the other in unified format.
//
// The following options are supported: [diff.Context], [diff.Optimal], [diff.WithAlgorithm],
// [IndentHeuristic], [TerminalColors].
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func UnifiedBytes(x, y []byte, opts []diff.Option) []byte {
	// FromOptions is called again inside diff.Hunks; this extra call costs nothing of substance and
	// is the only way to recover cfg.Color, which diff.Hunks has no reason to know about.
	cfg := config.FromOptions(opts, config.Context|config.Optimal|config.AlgorithmFlag|config.IndentHeuristic|config.ColorFlag)

	xv := byteview.From(x)
	yv := byteview.From(y)
	xlines, _ := byteview.SplitLines(xv)
	ylines, _ := byteview.SplitLines(yv)

	in := diff.NewInternerSize[byteview.ByteView](len(xlines) + len(ylines))
	before, err := in.NewInputFile(xlines)
	if err != nil {
		panic(err) // line counts are always within TokenId's range in any realistic input
	}
	after, err := in.NewInputFile(ylines)
	if err != nil {
		panic(err)
	}

	hs, err := diff.Hunks(before, after, opts...)
	if err != nil {
		panic(err) // before and after share one Interner by construction
	}
	if len(hs) == 0 {
		return nil
	}

	var b bytes.Buffer
	for _, h := range hs {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.X0+1, h.X1-h.X0, h.Y0+1, h.Y1-h.Y0)
		writeColored(&b, cfg.Color.HunkHeaderSGR(), header)
		b.WriteByte('\n')
		for _, e := range h.Edits {
			var prefix, sgr string
			switch e.Op {
			case diff.Delete:
				prefix, sgr = prefixDelete, cfg.Color.DeleteSGR()
			case diff.Insert:
				prefix, sgr = prefixInsert, cfg.Color.InsertSGR()
			default:
				prefix, sgr = prefixMatch, cfg.Color.MatchSGR()
			}
			line := e.Elem.String()
			writeColored(&b, sgr, prefix+line)
			// SplitLines includes the trailing '\n' in every line except possibly the file's very
			// last one, so this only fires for that one line, on whichever side it appears.
			if len(line) == 0 || line[len(line)-1] != '\n' {
				b.WriteString("\n\\ No newline at end of file\n")
			}
		}
	}
	return b.Bytes()
}

// writeColored writes s to b, wrapped in sgr and a trailing reset if sgr is non-empty.
func writeColored(b *bytes.Buffer, sgr, s string) {
	if sgr == "" {
		b.WriteString(s)
		return
	}
	b.WriteString(sgr)
	b.WriteString(s)
	b.WriteString(reset)
}
