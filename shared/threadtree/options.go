package threadtree

import "fmt"

// DefaultMaxDepth bounds both building and walking a forest.
const DefaultMaxDepth = 500

type OrphanPolicy string

const (
	OrphanDrop   OrphanPolicy = "drop"
	OrphanAsRoot OrphanPolicy = "root"
	OrphanError  OrphanPolicy = "error"
)

type DuplicatePolicy string

const (
	DuplicateLastWins DuplicatePolicy = "last_wins"
	DuplicateError    DuplicatePolicy = "error"
)

// Options controls how malformed input is treated. The zero value means
// drop orphans, last duplicate wins, DefaultMaxDepth.
type Options struct {
	OnOrphan      OrphanPolicy
	OnDuplicateId DuplicatePolicy
	MaxDepth      int
}

func DefaultOptions() Options {
	return Options{
		OnOrphan:      OrphanDrop,
		OnDuplicateId: DuplicateLastWins,
		MaxDepth:      DefaultMaxDepth,
	}
}

func (o Options) withDefaults() Options {
	if o.OnOrphan == "" {
		o.OnOrphan = OrphanDrop
	}
	if o.OnDuplicateId == "" {
		o.OnDuplicateId = DuplicateLastWins
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

// Validate rejects unknown policy names, typically coming from config files.
func (o Options) Validate() error {
	switch o.OnOrphan {
	case "", OrphanDrop, OrphanAsRoot, OrphanError:
	default:
		return fmt.Errorf("unknown orphan policy %q", o.OnOrphan)
	}
	switch o.OnDuplicateId {
	case "", DuplicateLastWins, DuplicateError:
	default:
		return fmt.Errorf("unknown duplicate id policy %q", o.OnDuplicateId)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", o.MaxDepth)
	}
	return nil
}
