package threadtree

import (
	"errors"
	"fmt"

	"github.com/coursehub/forumtree/shared/domain"
)

var (
	ErrOrphan        = errors.New("reply references unknown parent")
	ErrDuplicateId   = errors.New("duplicate thread id")
	ErrDepthExceeded = errors.New("thread depth limit exceeded")
)

// RecordError ties a build failure to the offending record.
type RecordError struct {
	Id  domain.ThreadId
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("thread %s: %v", e.Id, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

type DropReason string

const (
	DropOrphan      DropReason = "orphan"
	DropDuplicate   DropReason = "duplicate"
	DropUnreachable DropReason = "unreachable" // only reachable through a parent cycle
	DropTooDeep     DropReason = "too_deep"
)

// DroppedRecord is an input record that did not make it into the forest.
type DroppedRecord struct {
	Record domain.ThreadRecord
	Reason DropReason
}
