package models

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/killallgit/comment-search-api/pkg/errors"
)

// Query parameter names accepted by the search endpoint and sent upstream
const (
	ParamSearchAuthor = "search_author"
	ParamAtFrom       = "at_from"
	ParamAtTo         = "at_to"
	ParamLikeFrom     = "like_from"
	ParamLikeTo       = "like_to"
	ParamReplyFrom    = "reply_from"
	ParamReplyTo      = "reply_to"
	ParamSearchText   = "search_text"
)

const (
	// InputDateLayout is the DD-MM-YYYY format callers use for at_from/at_to
	InputDateLayout = "02-01-2006"

	// UpstreamTimeLayout is the timestamp text format of the upstream API
	UpstreamTimeLayout = "Mon, 02 Jan 2006 15:04:05 GMT"
)

var (
	// ErrInvalidDate indicates an at_from/at_to value that is not a DD-MM-YYYY date
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInteger indicates a like/reply bound that is not an integer
	ErrInvalidInteger = errors.New("invalid integer")
)

// SearchFilter holds the optional criteria of a single search request.
// A nil field places no constraint on the result.
type SearchFilter struct {
	SearchAuthor *string
	AtFrom       *time.Time
	AtTo         *time.Time
	LikeFrom     *int64
	LikeTo       *int64
	ReplyFrom    *int64
	ReplyTo      *int64
	SearchText   *string
}

// NormalizeDate converts a DD-MM-YYYY date into the upstream timestamp text,
// e.g. "25-12-2023" becomes "Mon, 25 Dec 2023 00:00:00 GMT".
func NormalizeDate(value string) (string, error) {
	t, err := parseInputDate(value)
	if err != nil {
		return "", err
	}
	return formatUpstreamTime(t), nil
}

func parseInputDate(value string) (time.Time, error) {
	t, err := time.Parse(InputDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, value, err)
	}
	return t, nil
}

func formatUpstreamTime(t time.Time) string {
	return t.UTC().Format(UpstreamTimeLayout)
}

// ParseSearchFilter builds a SearchFilter from request query parameters.
// Parameters that are missing or empty are left unset. Malformed dates and
// integers are reported as invalid input errors.
func ParseSearchFilter(values url.Values) (*SearchFilter, error) {
	filter := &SearchFilter{}

	if v := values.Get(ParamSearchAuthor); v != "" {
		filter.SearchAuthor = &v
	}
	if v := values.Get(ParamSearchText); v != "" {
		filter.SearchText = &v
	}

	dates := []struct {
		name string
		dst  **time.Time
	}{
		{ParamAtFrom, &filter.AtFrom},
		{ParamAtTo, &filter.AtTo},
	}
	for _, d := range dates {
		v := values.Get(d.name)
		if v == "" {
			continue
		}
		t, err := parseInputDate(v)
		if err != nil {
			return nil, apperrors.ValidationError(d.name, v, "expected a calendar date in DD-MM-YYYY format").
				WithCause(err)
		}
		*d.dst = &t
	}

	ints := []struct {
		name string
		dst  **int64
	}{
		{ParamLikeFrom, &filter.LikeFrom},
		{ParamLikeTo, &filter.LikeTo},
		{ParamReplyFrom, &filter.ReplyFrom},
		{ParamReplyTo, &filter.ReplyTo},
	}
	for _, i := range ints {
		v := values.Get(i.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, apperrors.ValidationError(i.name, v, "expected an integer").
				WithCause(fmt.Errorf("%w %q: %v", ErrInvalidInteger, v, err))
		}
		*i.dst = &n
	}

	return filter, nil
}

// UpstreamQuery returns the query parameters to forward upstream.
// Only fields that are set are included.
func (f *SearchFilter) UpstreamQuery() url.Values {
	params := url.Values{}

	if f.SearchAuthor != nil {
		params.Set(ParamSearchAuthor, *f.SearchAuthor)
	}
	if f.AtFrom != nil {
		params.Set(ParamAtFrom, formatUpstreamTime(*f.AtFrom))
	}
	if f.AtTo != nil {
		params.Set(ParamAtTo, formatUpstreamTime(*f.AtTo))
	}
	setInt := func(name string, v *int64) {
		if v != nil {
			params.Set(name, strconv.FormatInt(*v, 10))
		}
	}
	setInt(ParamLikeFrom, f.LikeFrom)
	setInt(ParamLikeTo, f.LikeTo)
	setInt(ParamReplyFrom, f.ReplyFrom)
	setInt(ParamReplyTo, f.ReplyTo)
	if f.SearchText != nil {
		params.Set(ParamSearchText, *f.SearchText)
	}

	return params
}

// Matches reports whether the comment satisfies every criterion that is set
func (f *SearchFilter) Matches(c Comment) bool {
	if f.SearchAuthor != nil && !strings.Contains(c.Author, *f.SearchAuthor) {
		return false
	}
	if f.AtFrom != nil && c.At < formatUpstreamTime(*f.AtFrom) {
		return false
	}
	if f.AtTo != nil && c.At > formatUpstreamTime(*f.AtTo) {
		return false
	}
	if f.LikeFrom != nil && c.Like < *f.LikeFrom {
		return false
	}
	if f.LikeTo != nil && c.Like > *f.LikeTo {
		return false
	}
	if f.ReplyFrom != nil && c.Reply < *f.ReplyFrom {
		return false
	}
	if f.ReplyTo != nil && c.Reply > *f.ReplyTo {
		return false
	}
	if f.SearchText != nil && !strings.Contains(c.Text, *f.SearchText) {
		return false
	}
	return true
}

// Apply returns the comments matching the filter in their original order.
// The result is never nil.
func (f *SearchFilter) Apply(comments []Comment) []Comment {
	filtered := make([]Comment, 0, len(comments))
	for _, c := range comments {
		if f.Matches(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
