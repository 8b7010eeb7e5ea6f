package models

import "slices"

// Answer is a reply to a Q&A post.
type Answer struct {
	ID         string `json:"id" example:"a1"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`
	Content    string `json:"content"`
	Votes      int    `json:"votes"`
	PostedDate int64  `json:"postedDate"` // epoch milliseconds
	IsAccepted bool   `json:"isAccepted"`
}

// QnaPost is a question in the Q&A forum.
type QnaPost struct {
	ID          string   `json:"id" example:"q1"`
	UserID      string   `json:"userId"`
	UserName    string   `json:"userName"`
	UserAvatar  string   `json:"userAvatar"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Votes       int      `json:"votes"`
	AnswerCount int      `json:"answerCount"`
	Views       int      `json:"views"`
	PostedDate  int64    `json:"postedDate"` // epoch milliseconds
	Answers     []Answer `json:"answers"`
}

// Validate implements Validatable.
func (p QnaPost) Validate() error {
	if p.Title == "" {
		return invalid("question", p.ID, "empty title")
	}
	if p.AnswerCount < 0 || p.Views < 0 {
		return invalid("question", p.ID, "negative counter")
	}
	ids := make([]string, len(p.Answers))
	for i, a := range p.Answers {
		ids[i] = a.ID
	}
	if err := uniqueIDs("answer", ids); err != nil {
		return invalid("question", p.ID, "%v", err)
	}
	return nil
}

// Clone returns a deep copy.
func (p QnaPost) Clone() QnaPost {
	p.Tags = cloneStrings(p.Tags)
	p.Answers = slices.Clone(p.Answers)
	return p
}

// QnaPosts holds questions in insertion order.
type QnaPosts []QnaPost

// Validate implements Validatable.
func (q QnaPosts) Validate() error {
	ids := make([]string, len(q))
	for i, p := range q {
		if err := p.Validate(); err != nil {
			return err
		}
		ids[i] = p.ID
	}
	return uniqueIDs("question", ids)
}

// Clone returns a deep copy.
func (q QnaPosts) Clone() QnaPosts {
	out := make(QnaPosts, len(q))
	for i, p := range q {
		out[i] = p.Clone()
	}
	return out
}

// Index returns the position of the post with id, or -1.
func (q QnaPosts) Index(id string) int {
	for i, p := range q {
		if p.ID == id {
			return i
		}
	}
	return -1
}
