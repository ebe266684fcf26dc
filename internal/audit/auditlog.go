package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Entry is one vault operation in the hash chain. It carries only the
// operation name and the outcome kind; secrets never enter the chain.
type Entry struct {
	TS   int64  `json:"ts"`
	Op   string `json:"op"`
	Kind string `json:"kind"`
	Hash string `json:"hash"`
}

// Log is an append-only, hash-chained record of vault operations. Safe for
// concurrent use.
type Log struct {
	mu       sync.Mutex
	lastHash []byte
	entries  []Entry
}

func New() *Log { return &Log{} }

func (l *Log) Append(op, kind string) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	sum := chain(l.lastHash, op, kind)
	l.lastHash = sum
	e := Entry{TS: time.Now().Unix(), Op: op, Kind: kind, Hash: hex.EncodeToString(sum)}
	l.entries = append(l.entries, e)
	return e
}

// Verify recomputes the chain and reports the first broken link.
func (l *Log) Verify() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	var prev []byte
	for i, e := range l.entries {
		sum := chain(prev, e.Op, e.Kind)
		if hex.EncodeToString(sum) != e.Hash {
			return fmt.Errorf("audit chain broken at entry %d", i)
		}
		prev = sum
	}
	return nil
}

func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

func chain(prev []byte, op, kind string) []byte {
	h := sha256.New()
	h.Write(prev)
	h.Write([]byte(op))
	h.Write([]byte{0})
	h.Write([]byte(kind))
	return h.Sum(nil)
}
