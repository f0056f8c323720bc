package agent

import (
	"encoding/json"
	"fmt"
	"sort"
)

// MergeRule declares how concurrent deltas into the same state key are
// resolved when parallel branches join at a barrier.
type MergeRule string

const (
	// MergeReplace takes the last writer's value.
	MergeReplace MergeRule = "replace"
	// MergeAppend concatenates list values.
	MergeAppend MergeRule = "append"
	// MergeMax keeps the numeric maximum.
	MergeMax MergeRule = "max"
	// MergeUnion keeps the set union of list values.
	MergeUnion MergeRule = "union"
)

// State is the key-addressed shared state of a graph execution.
type State map[string]interface{}

// Delta is the state change produced by one node.
type Delta map[string]interface{}

// Clone returns a shallow copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Float reads a numeric key, tolerating the float64/int/json.Number forms
// that survive a JSON round trip.
func (s State) Float(key string) (float64, bool) {
	switch v := s[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// String reads a string key.
func (s State) String(key string) (string, bool) {
	v, ok := s[key].(string)
	return v, ok
}

// Apply merges one delta into the state under the given rules. Keys without
// a declared rule replace.
func (s State) Apply(delta Delta, rules map[string]MergeRule) error {
	for key, next := range delta {
		rule, ok := rules[key]
		if !ok {
			rule = MergeReplace
		}
		merged, err := mergeValue(rule, s[key], next)
		if err != nil {
			return fmt.Errorf("merge key %q: %w", key, err)
		}
		s[key] = merged
	}
	return nil
}

// MergeParallel applies the deltas of parallel branches in deterministic
// (branch-name) order. Every key written by more than one branch must have
// a declared rule; Compile enforces that, so this only applies them.
func (s State) MergeParallel(deltas map[string]Delta, rules map[string]MergeRule) error {
	names := make([]string, 0, len(deltas))
	for name := range deltas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.Apply(deltas[name], rules); err != nil {
			return fmt.Errorf("branch %q: %w", name, err)
		}
	}
	return nil
}

func mergeValue(rule MergeRule, prev, next interface{}) (interface{}, error) {
	switch rule {
	case MergeReplace:
		return next, nil

	case MergeAppend:
		if prev == nil {
			return toList(next), nil
		}
		return append(toList(prev), toList(next)...), nil

	case MergeMax:
		nf, ok := toFloat(next)
		if !ok {
			return nil, fmt.Errorf("max merge requires numeric value, got %T", next)
		}
		if prev == nil {
			return nf, nil
		}
		pf, ok := toFloat(prev)
		if !ok {
			return nil, fmt.Errorf("max merge requires numeric value, got %T", prev)
		}
		if nf > pf {
			return nf, nil
		}
		return pf, nil

	case MergeUnion:
		seen := make(map[string]struct{})
		var out []interface{}
		for _, v := range append(toList(prev), toList(next)...) {
			key := fmt.Sprintf("%v", v)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, v)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown merge rule %q", rule)
	}
}

func toList(v interface{}) []interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case []interface{}:
		return t
	default:
		return []interface{}{t}
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// EncodeState serializes state for a checkpoint blob.
func EncodeState(s State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// DecodeState restores state from a checkpoint blob.
func DecodeState(data []byte) (State, error) {
	if len(data) == 0 {
		return State{}, nil
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	return s, nil
}
