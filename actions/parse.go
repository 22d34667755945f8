package actions

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
)

var (
	// ErrNoKeys means the text had no <keys>...</keys> block.
	ErrNoKeys = errors.New("no <keys> block")
	// ErrMalformed means the <keys> block was not a JSON list.
	ErrMalformed = errors.New("malformed <keys> block")
)

var keysPattern = regexp.MustCompile(`(?s)<keys>(.*?)</keys>`)

// Parse extracts the action script from text, e.g.
//
//	<keys>[["HOLD_UP"], ["LEFT", "SPACE"], ["NOOP"], [], ["ENTER"]]</keys>
//
// The result always has SegmentCount segments: short scripts are padded with
// NOOP segments and long ones truncated. When the block is missing or cannot be
// decoded the segments are all NOOP and the error wraps ErrNoKeys or ErrMalformed.
func Parse(text string) ([]Segment, error) {
	match := keysPattern.FindStringSubmatch(text)
	if match == nil {
		return NoopSegments(SegmentCount), ErrNoKeys
	}

	body := strings.TrimSpace(match[1])
	if strings.Contains(body, "'") && !strings.Contains(body, `"`) {
		body = strings.ReplaceAll(body, "'", `"`)
	}

	var raw []interface{}
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return NoopSegments(SegmentCount), fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw == nil {
		return NoopSegments(SegmentCount), fmt.Errorf("%w: null", ErrMalformed)
	}

	if len(raw) != SegmentCount {
		log.Printf("actions: expected %d segments, got %d. Padding or truncating.", SegmentCount, len(raw))
	}
	if len(raw) > SegmentCount {
		raw = raw[:SegmentCount]
	}

	segments := make([]Segment, 0, SegmentCount)
	for index, entry := range raw {
		segments = append(segments, parseSegment(index, entry))
	}
	for len(segments) < SegmentCount {
		segments = append(segments, Segment{Noop})
	}
	return segments, nil
}

func parseSegment(index int, entry interface{}) Segment {
	items, ok := entry.([]interface{})
	if !ok {
		if isFalsy(entry) {
			return Segment{Noop}
		}
		items = []interface{}{entry}
	}

	segment := make(Segment, 0, len(items))
	for _, item := range items {
		if item == nil {
			segment = append(segment, Noop)
			continue
		}
		name := fmt.Sprint(item)
		action, ok := Lookup(name)
		if !ok {
			log.Printf("actions: unknown action %q in segment %d", name, index)
			continue
		}
		segment = append(segment, action)
	}
	return segment
}

func isFalsy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case bool:
		return !value
	case float64:
		return value == 0
	}
	return false
}
