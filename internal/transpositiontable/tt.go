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

// Package transpositiontable implements a bounded-capacity cache keyed by
// Zobrist hash. Unlike the always-replace, fixed-array table a search
// engine typically uses, this Table is a map plus a container/list ring:
// capacity is enforced by evicting the oldest insertion, not by address
// collision, which keeps every stored entry addressable by its exact key.
// Table is not safe for concurrent use and must be synchronized externally
// if shared across goroutines.
package transpositiontable

import (
	"container/list"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/core/internal/assert"
	myLogging "github.com/corvidchess/core/internal/logging"
	"github.com/corvidchess/core/internal/position"
	"github.com/corvidchess/core/internal/types"
	"github.com/corvidchess/core/internal/util"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB is the largest table size Resize will honor.
const MaxSizeInMB = 65_536

const mb = 1024 * 1024

// Stats holds counters on table usage, reset by Clear.
type Stats struct {
	Puts      uint64
	Updates   uint64
	Evictions uint64
	Probes    uint64
	Hits      uint64
	Misses    uint64
}

// Table is a Zobrist-keyed cache of Entry values, bounded in capacity unless
// sized unbounded (see Resize).
type Table struct {
	log *logging.Logger

	maxEntries int
	unbounded  bool
	entries    map[position.Key]*list.Element
	order      *list.List // front = most recent insertion, back = next to evict

	Stats Stats
}

// New creates a Table sized to hold roughly sizeInMByte megabytes of
// entries. sizeInMByte <= 0 makes the table unbounded.
func New(sizeInMByte int) *Table {
	t := &Table{log: myLogging.GetEngineLog()}
	t.Resize(sizeInMByte)
	return t
}

// Resize changes the table's capacity, clearing all existing entries.
// sizeInMByte <= 0 makes the table unbounded: Put never evicts.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		t.log.Error(out.Sprintf("requested TT size of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	t.unbounded = sizeInMByte <= 0
	if t.unbounded {
		t.maxEntries = 0
		t.entries = make(map[position.Key]*list.Element)
		t.log.Info("TT resized to unbounded capacity")
	} else {
		t.maxEntries = (sizeInMByte * mb) / entrySize
		t.entries = make(map[position.Key]*list.Element, t.maxEntries)
		t.log.Info(out.Sprintf("TT resized to %d MB, capacity %d entries", sizeInMByte, t.maxEntries))
	}
	t.order = list.New()
	t.Stats = Stats{}

	t.log.Debug(util.MemStat())
}

// Probe looks up key and reports whether an entry is stored for it.
func (t *Table) Probe(key position.Key) (Entry, bool) {
	t.Stats.Probes++
	if el, ok := t.entries[key]; ok {
		t.Stats.Hits++
		return el.Value.(Entry), true
	}
	t.Stats.Misses++
	return Entry{}, false
}

// Put stores (or updates) the entry for key: the move, the search depth it
// was stored at, a value from the side-to-move's perspective and the bound
// kind that value is under. When the table is bounded and at capacity and
// key is not already present, the oldest inserted entry is evicted to make
// room - insertion order, not access recency, decides what goes. An
// unbounded table (see Resize) never evicts.
func (t *Table) Put(key position.Key, move types.Move, depth int8, value int, bound Bound) {
	if assert.DEBUG {
		assert.Assert(depth >= 0, "TT:put Depth must be >= 0")
	}

	entry := Entry{Key: key, Move: move, Depth: depth, Value: value, Bound: bound}

	if el, ok := t.entries[key]; ok {
		t.Stats.Updates++
		el.Value = entry
		return
	}

	t.Stats.Puts++
	if !t.unbounded && t.order.Len() >= t.maxEntries {
		t.evictOldest()
	}
	el := t.order.PushFront(entry)
	t.entries[key] = el
}

// evictOldest drops the least recently inserted entry.
func (t *Table) evictOldest() {
	oldest := t.order.Back()
	if oldest == nil {
		return
	}
	t.order.Remove(oldest)
	delete(t.entries, oldest.Value.(Entry).Key)
	t.Stats.Evictions++
}

// Clear empties the table without changing its capacity.
func (t *Table) Clear() {
	t.entries = make(map[position.Key]*list.Element, t.maxEntries)
	t.order = list.New()
	t.Stats = Stats{}
}

// Len returns the number of entries currently stored.
func (t *Table) Len() int {
	return t.order.Len()
}

// Hashfull returns how full the table is, in permille, as reported by the
// UCI "hashfull" info field.
func (t *Table) Hashfull() int {
	if t.unbounded || t.maxEntries == 0 {
		return 0
	}
	return (1000 * t.Len()) / t.maxEntries
}

// String returns a human readable summary of the table's size and usage
// statistics.
func (t *Table) String() string {
	return out.Sprintf("TT: capacity %d entries, %d stored (%d%%), puts %d updates %d evictions %d "+
		"probes %d hits %d (%d%%) misses %d (%d%%)",
		t.maxEntries, t.Len(), t.Hashfull()/10,
		t.Stats.Puts, t.Stats.Updates, t.Stats.Evictions, t.Stats.Probes,
		t.Stats.Hits, (t.Stats.Hits*100)/(1+t.Stats.Probes),
		t.Stats.Misses, (t.Stats.Misses*100)/(1+t.Stats.Probes))
}
