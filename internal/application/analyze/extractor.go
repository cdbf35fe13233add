package analyze

import "regexp"

// EntityKind labels a shallow-extracted entity.
type EntityKind string

const (
	EntityPerson   EntityKind = "person"
	EntityLocation EntityKind = "location"
	EntityTime     EntityKind = "time"
)

// Entity is one shallow-extracted mention from the question text.
type Entity struct {
	Kind  EntityKind `json:"kind"`
	Value string     `json:"value"`
}

// The extraction patterns are intentionally shallow: fixed surname and
// pronoun lists, preposition-anchored locations, literal date/time shapes,
// and verb+aspect-marker actions.  They trade recall for zero-dependency
// determinism.
var (
	personPattern = regexp.MustCompile(
		`([張李王陳楊趙黃周吳劉蔡鄭許謝郭洪曾邱廖賴][\x{4e00}-\x{9fa5}]{0,1}某|我們|他們|她們|你們|妳們|我|他|她|你|妳)`)
	locationPattern = regexp.MustCompile(
		`(在|於)([^，。！？；：]{1,10})`)
	timePattern = regexp.MustCompile(
		`([0-9]{4}年[0-9]{1,2}月[0-9]{1,2}日|[0-9]{1,2}月[0-9]{1,2}日|[0-9]{1,2}日|[0-9]{1,2}時|[0-9]{1,2}分|昨天|今天|明天|前天|後天|早上|中午|下午|晚上)`)
	actionPattern = regexp.MustCompile(
		`([^，。！？；：]{1,3})(了|過)([^，。！？；：]{1,10})`)
)

// Extract pulls person/location/time entities and verb-phrase actions from
// the raw question text.  Matches are returned in text order.
func Extract(text string) ([]Entity, []string) {
	var entities []Entity

	for _, m := range personPattern.FindAllString(text, -1) {
		entities = append(entities, Entity{Kind: EntityPerson, Value: m})
	}
	for _, m := range locationPattern.FindAllStringSubmatch(text, -1) {
		entities = append(entities, Entity{Kind: EntityLocation, Value: m[2]})
	}
	for _, m := range timePattern.FindAllString(text, -1) {
		entities = append(entities, Entity{Kind: EntityTime, Value: m})
	}

	var actions []string
	for _, m := range actionPattern.FindAllString(text, -1) {
		actions = append(actions, m)
	}
	return entities, actions
}
