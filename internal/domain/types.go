package domain

type (
	ThreadId    = int64
	ReplyId     = int64
	ThreadTitle = string
	Text        = string
)
