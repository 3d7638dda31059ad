package threadtree

import (
	"strconv"

	"github.com/coursehub/forumtree/shared/domain"
)

func rec(id, parent string) domain.ThreadRecord {
	r := domain.ThreadRecord{Id: domain.ThreadId(id), Title: "t" + id, Body: "body " + id}
	if parent != "" {
		p := domain.ThreadId(parent)
		r.ParentId = &p
	}
	return r
}

// ids returns node ids of a sibling list.
func ids(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Record.Id.String())
	}
	return out
}

func droppedIds(dropped []DroppedRecord) map[string]DropReason {
	out := make(map[string]DropReason, len(dropped))
	for _, d := range dropped {
		out[d.Record.Id.String()] = d.Reason
	}
	return out
}

// chain returns n records where record i replies to record i-1.
func chain(n int) []domain.ThreadRecord {
	records := make([]domain.ThreadRecord, 0, n)
	for i := 0; i < n; i++ {
		parent := ""
		if i > 0 {
			parent = itoa(i - 1)
		}
		records = append(records, rec(itoa(i), parent))
	}
	return records
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
