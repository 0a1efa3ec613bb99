/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Command perft exercises internal/movegen's move generator against known
// node counts, the way the teacher's main() exposes a -perft flag against
// its own search-free move generator.
package main

import (
	"flag"
	"sort"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/core/internal/config"
	"github.com/corvidchess/core/internal/logging"
	"github.com/corvidchess/core/internal/movegen"
	"github.com/corvidchess/core/internal/position"
	"github.com/corvidchess/core/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", config.ConfFile, "path to configuration settings file")
	fen := flag.String("fen", position.StartFen, "FEN of the position to run perft on")
	depth := flag.Int("depth", 5, "perft search depth")
	divide := flag.Bool("divide", false, "print a per-root-move node count breakdown instead of just the total")
	cpuprofile := flag.Bool("cpuprofile", false, "write a CPU profile of the perft run to cpu.pprof")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	logging.GetLog()

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	p, err := position.NewPositionFen(*fen)
	if err != nil {
		out.Printf("invalid FEN %q: %v\n", *fen, err)
		return
	}

	if *divide {
		runDivide(p, *depth)
		return
	}
	runPerft(p, *depth)
}

func runPerft(p position.Position, maxDepth int) {
	out.Printf("%-8s %-15s %-10s %-12s\n", "depth", "nodes", "time", "nps")
	for d := 1; d <= maxDepth; d++ {
		start := time.Now()
		nodes := movegen.Perft(p, d)
		elapsed := time.Since(start)
		out.Printf("%-8d %-15d %-10s %-12d\n", d, nodes, elapsed, util.Nps(nodes, elapsed))
	}
}

func runDivide(p position.Position, depth int) {
	counts := movegen.Divide(p, depth)
	moves := make([]string, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var total uint64
	for _, m := range moves {
		out.Printf("%-6s %d\n", m, counts[m])
		total += counts[m]
	}
	out.Printf("total %d\n", total)
}
