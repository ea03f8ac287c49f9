package models

import "encoding/json"

// Comment represents a single comment returned by the upstream comment API
type Comment struct {
	Author string `json:"author" example:"alice"`
	At     string `json:"at" example:"Mon, 25 Dec 2023 10:30:00 GMT"`
	Like   int64  `json:"like" example:"15"`
	Reply  int64  `json:"reply" example:"2"`
	Text   string `json:"text" example:"great video"`

	// raw holds the upstream JSON object so responses echo it unmodified
	raw json.RawMessage
}

// WithRaw returns a copy of the comment that serializes as the given upstream JSON
func (c Comment) WithRaw(raw []byte) Comment {
	c.raw = append(json.RawMessage(nil), raw...)
	return c
}

// MarshalJSON emits the original upstream object when one is attached
func (c Comment) MarshalJSON() ([]byte, error) {
	if len(c.raw) > 0 {
		return c.raw, nil
	}
	type plain Comment
	return json.Marshal(plain(c))
}
