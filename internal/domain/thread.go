package domain

import (
	"time"

	"github.com/lib/pq"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title   ThreadTitle
	Content Text
}

type ThreadUpdateData struct {
	Title   ThreadTitle
	Content Text
}

type ThreadMetadata struct {
	Id           ThreadId
	Title        ThreadTitle
	Content      Text
	CreatedAt    time.Time
	LastEditedAt time.Time
	LastActivity time.Time // equals CreatedAt until the first reply lands
	NumReplies   int
}

// Thread is the aggregate root: it owns its replies through ReplyIds,
// an ordered reference list. Replies is populated only by reads that
// resolve the references.
type Thread struct {
	ThreadMetadata
	ReplyIds pq.Int64Array
	Replies  []*Reply
}
