// Package threadtree assembles flat lists of forum thread records into a
// forest of reply trees and walks that forest depth-first.
package threadtree

import (
	"github.com/coursehub/forumtree/shared/domain"
)

// Node owns one record and its direct replies, in input order.
type Node struct {
	Record   domain.ThreadRecord
	Children []*Node
}

type Forest struct {
	Roots   []*Node
	Dropped []DroppedRecord
	// MaxDepth is the limit the forest was built with; Walk reuses it.
	MaxDepth int
}

type recordState uint8

const (
	statePending recordState = iota
	statePlaced
	stateDropped
)

// Build turns records into a forest. Roots keep their input order and
// replies keep their input order under each parent; createdAt is never used
// for ordering.
//
// Orphans and duplicate ids are handled according to opts. Records that can
// only be reached through a parent cycle are never placed and are reported
// as unreachable. If a reply would sit deeper than opts.MaxDepth the build
// fails with ErrDepthExceeded, but the forest placed so far is returned
// together with the error so callers can still show it.
func Build(records []domain.ThreadRecord, opts Options) (Forest, error) {
	opts = opts.withDefaults()
	forest := Forest{MaxDepth: opts.MaxDepth}
	if len(records) == 0 {
		return forest, nil
	}

	last := make(map[domain.ThreadId]int, len(records))
	for i := range records {
		id := records[i].Id
		if _, seen := last[id]; seen && opts.OnDuplicateId == DuplicateError {
			return Forest{MaxDepth: opts.MaxDepth}, &RecordError{Id: id, Err: ErrDuplicateId}
		}
		last[id] = i
	}

	state := make([]recordState, len(records))
	var rootIdx []int
	childrenOf := make(map[domain.ThreadId][]int)
	for i := range records {
		rec := &records[i]
		if last[rec.Id] != i {
			state[i] = stateDropped
			forest.Dropped = append(forest.Dropped, DroppedRecord{Record: *rec, Reason: DropDuplicate})
			continue
		}
		if rec.IsRoot() {
			rootIdx = append(rootIdx, i)
			continue
		}
		if _, ok := last[*rec.ParentId]; !ok {
			switch opts.OnOrphan {
			case OrphanError:
				return Forest{MaxDepth: opts.MaxDepth}, &RecordError{Id: rec.Id, Err: ErrOrphan}
			case OrphanAsRoot:
				rootIdx = append(rootIdx, i)
			default:
				state[i] = stateDropped
				forest.Dropped = append(forest.Dropped, DroppedRecord{Record: *rec, Reason: DropOrphan})
			}
			continue
		}
		childrenOf[*rec.ParentId] = append(childrenOf[*rec.ParentId], i)
	}

	type frame struct {
		node  *Node
		depth int
	}
	var (
		depthErr error
		tooDeep  []int
	)
	forest.Roots = make([]*Node, 0, len(rootIdx))
	for _, ri := range rootIdx {
		root := &Node{Record: records[ri]}
		state[ri] = statePlaced
		forest.Roots = append(forest.Roots, root)

		stack := []frame{{node: root, depth: 0}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, ci := range childrenOf[f.node.Record.Id] {
				if state[ci] != statePending {
					continue
				}
				if f.depth+1 > opts.MaxDepth {
					if depthErr == nil {
						depthErr = &RecordError{Id: records[ci].Id, Err: ErrDepthExceeded}
					}
					tooDeep = append(tooDeep, ci)
					continue
				}
				child := &Node{Record: records[ci]}
				state[ci] = statePlaced
				f.node.Children = append(f.node.Children, child)
				stack = append(stack, frame{node: child, depth: f.depth + 1})
			}
		}
	}

	// Everything under a record cut off by the depth limit is too deep as well.
	for len(tooDeep) > 0 {
		i := tooDeep[len(tooDeep)-1]
		tooDeep = tooDeep[:len(tooDeep)-1]
		if state[i] != statePending {
			continue
		}
		state[i] = stateDropped
		forest.Dropped = append(forest.Dropped, DroppedRecord{Record: records[i], Reason: DropTooDeep})
		tooDeep = append(tooDeep, childrenOf[records[i].Id]...)
	}

	for i := range records {
		if state[i] == statePending {
			forest.Dropped = append(forest.Dropped, DroppedRecord{Record: records[i], Reason: DropUnreachable})
		}
	}

	return forest, depthErr
}

// Len returns the number of placed nodes.
func (f Forest) Len() int {
	n := 0
	_ = f.Walk(func(*Node, int) error {
		n++
		return nil
	})
	return n
}

// Walk visits the forest in pre-order using the depth limit it was built with.
func (f Forest) Walk(visit func(node *Node, depth int) error) error {
	return Walk(f.Roots, f.MaxDepth, visit)
}

func (f Forest) Flatten() ([]Entry, error) {
	return Flatten(f.Roots, f.MaxDepth)
}
