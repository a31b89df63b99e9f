package domain

import "time"

type ReplyCreationData struct {
	Content Text
}

type ReplyUpdateData struct {
	Content Text
}

// Reply holds no back-reference to its thread; the linkage lives in
// the thread's ReplyIds list.
type Reply struct {
	Id           ReplyId
	Content      Text
	CreatedAt    time.Time
	LastEditedAt time.Time
}
