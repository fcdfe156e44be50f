package wire

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"
)

// FromMap builds a Message from a generic integer-keyed map. Keys must be
// positive field numbers. Values map onto the wire format as follows:
//
//   - integers (signed or unsigned) become varint fields; negative values
//     are encoded as their two's-complement uint64 pattern
//   - strings become length-delimited fields holding their UTF-8 bytes
//   - []byte becomes a length-delimited field, verbatim
//   - map[uint32]any and *Message become length-delimited fields holding
//     the recursively serialized submessage
//   - []any expands into one field per element with the same number
//     (repeated-field semantics)
//
// Import never produces group fields; groups only ever come from parsing
// legacy wire-type-3 input. Any other value type fails with
// ErrUnsupportedValue. Fields are emitted in ascending field-number order so
// the output is deterministic.
func FromMap(src map[uint32]any) (*Message, error) {
	nums := make([]uint32, 0, len(src))
	for num := range src {
		nums = append(nums, num)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

	m := New()
	for _, num := range nums {
		if num == 0 {
			return nil, ErrInvalidFieldNumber
		}
		if items, ok := src[num].([]any); ok {
			for _, item := range items {
				if err := m.putMapValue(num, item); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := m.putMapValue(num, src[num]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Message) putMapValue(num uint32, v any) error {
	switch t := v.(type) {
	case uint64:
		m.PutVarint(num, t)
	case uint32:
		m.PutVarint(num, uint64(t))
	case uint:
		m.PutVarint(num, uint64(t))
	case int:
		m.PutVarint(num, uint64(int64(t)))
	case int32:
		m.PutVarint(num, uint64(int64(t)))
	case int64:
		m.PutVarint(num, uint64(t))
	case string:
		m.PutText(num, t)
	case []byte:
		m.PutBytes(num, t)
	case map[uint32]any:
		sub, err := FromMap(t)
		if err != nil {
			return err
		}
		payload, err := sub.Marshal()
		if err != nil {
			return err
		}
		m.PutBytes(num, payload)
	case *Message:
		payload, err := t.Marshal()
		if err != nil {
			return err
		}
		m.PutBytes(num, payload)
	default:
		return fmt.Errorf("field %d: %T: %w", num, v, ErrUnsupportedValue)
	}
	return nil
}

// ToMap heuristically exports the message as a generic integer-keyed map.
// Each field decodes through a deterministic classifier:
//
//   - varint/fixed32/fixed64 fields export their raw unsigned integer
//   - length-delimited payloads export as a string when they are printable
//     UTF-8, as a nested map when they reparse to at least one field, and
//     as []byte otherwise
//   - group fields export their body as a nested map
//
// Fields sharing a number accumulate into a []any in encountered order; a
// number occurring exactly once is exposed as a bare scalar. That collapse
// is deliberately lossy: a single-element repeated field re-imports as an
// optional scalar, and text-like binary payloads may be misclassified as
// strings. ToMap never fails — ambiguous payloads degrade to []byte, and so
// do payloads nested past Limits.MaxDepth, so export recursion is bounded
// exactly like parse recursion.
func (m *Message) ToMap() map[uint32]any {
	return m.toMap(DefaultLimits().normalized(), 0)
}

func (m *Message) toMap(lim Limits, depth int) map[uint32]any {
	grouped := make(map[uint32][]any, len(m.fields))
	for _, f := range m.fields {
		var v any
		switch f.typ {
		case TypeVarint, TypeFixed32, TypeFixed64:
			v = f.uval
		case TypeBytes:
			v = classifyPayload(f.raw, lim, depth)
		case TypeStartGroup:
			if depth >= lim.MaxDepth {
				b, err := f.group.Marshal()
				if err != nil {
					continue
				}
				v = b
			} else {
				v = f.group.toMap(lim, depth+1)
			}
		default:
			continue
		}
		grouped[f.num] = append(grouped[f.num], v)
	}

	out := make(map[uint32]any, len(grouped))
	for num, vals := range grouped {
		if len(vals) == 1 {
			out[num] = vals[0]
		} else {
			out[num] = vals
		}
	}
	return out
}

// classifyPayload maps a length-delimited payload onto the closed outcome
// set {string, map[uint32]any, []byte}. Printable UTF-8 wins, then a
// successful speculative reparse yielding at least one field, then raw
// bytes. depth counts the nesting levels already consumed by the export;
// once it reaches lim.MaxDepth the payload is not reparsed at all, and the
// speculative parse itself only receives the remaining depth budget.
func classifyPayload(raw []byte, lim Limits, depth int) any {
	if s, ok := printableText(raw); ok {
		return s
	}
	if depth < lim.MaxDepth {
		sublim := Limits{MaxDepth: lim.MaxDepth - depth}
		if sub, err := ParseWithLimits(raw, sublim); err == nil && sub.Len() > 0 {
			return sub.toMap(lim, depth+1)
		}
	}
	return append([]byte(nil), raw...)
}

// printableText reports whether raw is valid UTF-8 consisting entirely of
// printable or whitespace runes, returning the decoded string when it is.
func printableText(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	s := string(raw)
	for _, r := range s {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return "", false
		}
	}
	return s, true
}

// ToMapTemplate exports the message against a template describing the
// expected shape. For each template key the first field with that number is
// coerced to the template value's type: integer placeholders select an
// integer decode, string placeholders a UTF-8 decode, []byte the raw
// payload, and nested map placeholders a recursive template export of the
// reparsed submessage. Missing fields and per-field conversion failures
// keep the template's placeholder; the export itself never fails.
func (m *Message) ToMapTemplate(tmpl map[uint32]any) map[uint32]any {
	out := make(map[uint32]any, len(tmpl))
	for num, placeholder := range tmpl {
		out[num] = placeholder
		if num == 0 {
			continue
		}
		switch shape := placeholder.(type) {
		case int, int32, int64, uint, uint32, uint64:
			if u, ok := m.GetUint(num); ok {
				out[num] = u
			}
		case string:
			if s, err := m.GetText(num); err == nil {
				out[num] = s
			}
		case []byte:
			if b, ok := m.GetBytes(num); ok {
				out[num] = append([]byte(nil), b...)
			}
		case map[uint32]any:
			if sub, err := m.GetMessage(num); err == nil {
				out[num] = sub.ToMapTemplate(shape)
			}
		default:
			// Shape has no wire coercion; the placeholder stands.
		}
	}
	return out
}
