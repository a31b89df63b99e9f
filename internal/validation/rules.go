package validation

// ThreadRules and ReplyRules satisfy the service layer's validator
// interfaces.

type ThreadRules struct{}

func (ThreadRules) Payload(title, content string) error {
	return Thread(ThreadPayload{Title: title, Content: content})
}

type ReplyRules struct{}

func (ReplyRules) Payload(content string) error {
	return Reply(ReplyPayload{ReplyContent: content})
}
