package grid

import (
	"iter"
	"slices"
)

// Commit is an immutable record of one applied edit: the resulting snapshot
// and the diffs from the previous commit's snapshot.
type Commit struct {
	data  Snapshot
	diffs []Diff
}

func newCommit(prev *Commit, next Snapshot, origin Cell) *Commit {
	c := &Commit{data: next}
	if prev == nil {
		c.diffs = generateOrigin(next, origin)
	} else {
		c.diffs = generateDiffs(prev.data, next)
	}
	return c
}

func (c *Commit) Data() Snapshot { return c.data }

func (c *Commit) Diffs() []Diff { return slices.Clone(c.diffs) }

func (c *Commit) Len() int { return len(c.diffs) }

// All yields the diffs in order with their index.
func (c *Commit) All() iter.Seq2[int, Diff] {
	return func(yield func(int, Diff) bool) {
		for i, d := range c.diffs {
			if !yield(i, d) {
				return
			}
		}
	}
}

// History is a bounded log of commits, oldest first.
type History struct {
	commits []*Commit
	limit   int
	origin  Cell
}

// NewHistory returns an empty log holding at most limit commits
// (DefaultHistoryLimit when limit <= 0). origin is the cell the first
// commit's snapshot is diffed against.
func NewHistory(limit int, origin Cell) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit, origin: origin}
}

func (h *History) Len() int { return len(h.commits) }

func (h *History) Limit() int { return h.limit }

// Head returns the most recent commit.
func (h *History) Head() (*Commit, bool) {
	if len(h.commits) == 0 {
		return nil, false
	}
	return h.commits[len(h.commits)-1], true
}

// Tail returns the oldest commit.
func (h *History) Tail() (*Commit, bool) {
	if len(h.commits) == 0 {
		return nil, false
	}
	return h.commits[0], true
}

// Pop removes and returns the most recent commit.
func (h *History) Pop() (*Commit, bool) {
	c, ok := h.Head()
	if !ok {
		return nil, false
	}
	h.commits[len(h.commits)-1] = nil
	h.commits = h.commits[:len(h.commits)-1]
	return c, true
}

// Shift removes and returns the oldest commit.
func (h *History) Shift() (*Commit, bool) {
	c, ok := h.Tail()
	if !ok {
		return nil, false
	}
	h.commits[0] = nil
	h.commits = h.commits[1:]
	return c, true
}

// AddCommit appends an existing commit without recomputing its diffs.
// A nil commit is ignored.
func (h *History) AddCommit(c *Commit) {
	if c == nil {
		return
	}
	h.commits = append(h.commits, c)
}

// AddData commits next on top of the current head, evicting the oldest
// commit when the log is full.
func (h *History) AddData(next Snapshot) *Commit {
	if len(h.commits) >= h.limit {
		h.Shift()
	}
	head, _ := h.Head()
	c := newCommit(head, next, h.origin)
	h.commits = append(h.commits, c)
	return c
}

// Flush removes and returns every commit, oldest first.
func (h *History) Flush() []*Commit {
	out := h.commits
	h.commits = nil
	return out
}
