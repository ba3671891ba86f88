package domain

// Policy is one topic from the static bank policy handbook.
type Policy struct {
	Topic   string `json:"topic"`
	Content string `json:"content"`
}
