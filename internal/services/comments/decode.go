package comments

import (
	"fmt"
	"math"

	"github.com/killallgit/comment-search-api/internal/models"
	"github.com/tidwall/gjson"
)

// decodeComments validates an upstream payload and extracts its comments.
// The payload must be a JSON object; a missing "comments" field yields no comments.
func decodeComments(body []byte) ([]models.Comment, error) {
	if !gjson.ValidBytes(body) {
		return nil, DecodeError{Reason: "body is not valid JSON"}
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, DecodeError{Reason: "body is not a JSON object"}
	}

	list := doc.Get("comments")
	if !list.Exists() || list.Type == gjson.Null {
		return []models.Comment{}, nil
	}
	if !list.IsArray() {
		return nil, DecodeError{Path: "comments", Reason: "expected an array"}
	}

	items := list.Array()
	result := make([]models.Comment, 0, len(items))
	for i, item := range items {
		c, err := decodeComment(item)
		if err != nil {
			prefix := fmt.Sprintf("comments[%d]", i)
			if err.Path == "" {
				err.Path = prefix
			} else {
				err.Path = prefix + "." + err.Path
			}
			return nil, *err
		}
		result = append(result, c.WithRaw([]byte(item.Raw)))
	}

	return result, nil
}

func decodeComment(item gjson.Result) (models.Comment, *DecodeError) {
	if !item.IsObject() {
		return models.Comment{}, &DecodeError{Reason: "expected an object"}
	}

	author, err := stringField(item, "author")
	if err != nil {
		return models.Comment{}, err
	}
	at, err := stringField(item, "at")
	if err != nil {
		return models.Comment{}, err
	}
	like, err := intField(item, "like")
	if err != nil {
		return models.Comment{}, err
	}
	reply, err := intField(item, "reply")
	if err != nil {
		return models.Comment{}, err
	}
	text, err := stringField(item, "text")
	if err != nil {
		return models.Comment{}, err
	}

	return models.Comment{
		Author: author,
		At:     at,
		Like:   like,
		Reply:  reply,
		Text:   text,
	}, nil
}

func stringField(item gjson.Result, name string) (string, *DecodeError) {
	v := item.Get(name)
	if !v.Exists() {
		return "", &DecodeError{Path: name, Reason: "missing"}
	}
	if v.Type != gjson.String {
		return "", &DecodeError{Path: name, Reason: "expected a string"}
	}
	return v.Str, nil
}

func intField(item gjson.Result, name string) (int64, *DecodeError) {
	v := item.Get(name)
	if !v.Exists() {
		return 0, &DecodeError{Path: name, Reason: "missing"}
	}
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return 0, &DecodeError{Path: name, Reason: "expected an integer"}
	}
	return v.Int(), nil
}
