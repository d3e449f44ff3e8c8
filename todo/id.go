package todo

import "time"

// idGenerator issues millisecond-derived IDs that never repeat within a store,
// even when several todos are created in the same millisecond.
type idGenerator struct {
	last int64
}

func (g *idGenerator) next(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// observe records an existing ID so later IDs sort after it.
func (g *idGenerator) observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
