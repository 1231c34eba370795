package feed

import (
	"strconv"
	"strings"
)

// PageKind tags a PageRequest.
type PageKind int

const (
	NonNumeric PageKind = iota
	Numeric
)

// PageRequest is a "go to page N" request. Value is 1-based and only
// meaningful for Numeric requests.
type PageRequest struct {
	Kind  PageKind
	Value int
}

// PageNumber builds a numeric request for 1-based page n.
func PageNumber(n int) PageRequest {
	return PageRequest{Kind: Numeric, Value: n}
}

// ParsePageRequest parses free text from a page field. Anything that is not
// an integer yields a NonNumeric request.
func ParsePageRequest(raw string) PageRequest {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return PageRequest{Kind: NonNumeric}
	}
	return PageNumber(n)
}

// Index resolves the request against a list of count entries and returns a
// 0-based index: below 1 clamps to the first entry, above count to the last,
// non-numeric goes to the first. Returns -1 for an empty list.
func (p PageRequest) Index(count int) int {
	if count <= 0 {
		return -1
	}
	if p.Kind != Numeric || p.Value < 1 {
		return 0
	}
	if p.Value > count {
		return count - 1
	}
	return p.Value - 1
}
