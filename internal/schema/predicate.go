package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/citystrata-service/internal/pkg/errors"
)

// Predicate is a conjunctive query condition: ordered SQL fragments plus a
// positionally matched argument list. The invariant is that placeholder
// numbering always matches argument position; fragments without arguments
// (the closed-status exclusion) consume no placeholder.
type Predicate struct {
	Conditions []string
	Args       []interface{}
}

// Append pushes one fragment whose single %d verb receives the next
// placeholder index, keeping fragment and argument order in lockstep.
func (p *Predicate) Append(fragment string, arg interface{}) {
	p.Args = append(p.Args, arg)
	p.Conditions = append(p.Conditions, fmt.Sprintf(fragment, len(p.Args)))
}

// Where joins the fragments into a WHERE clause body.
func (p *Predicate) Where() string {
	return strings.Join(p.Conditions, " AND ")
}

// NextPlaceholder is the index the next appended argument would take.
// Callers extending the predicate by hand (distance ordering, limits) use it
// to stay aligned with Args.
func (p *Predicate) NextPlaceholder() int {
	return len(p.Args) + 1
}

// Compile validates filter inputs against the kind's field specs and
// produces the predicate. The city constraint and, for closable kinds, the
// closed-status exclusion are always emitted first. Unknown fields and type
// mismatches fail with INVALID_FILTER; a bad filter is never dropped,
// because dropping it would silently widen the result set.
func Compile(s *ResourceSchema, filters map[string]string, cityCode int) (*Predicate, error) {
	for name := range filters {
		if _, ok := s.FilterSpec(name); !ok {
			return nil, errors.InvalidFilter("unknown filter field %q for resource kind %s", name, s.Kind)
		}
	}

	p := &Predicate{}
	p.Append("city_code = $%d", cityCode)
	if s.Closable {
		p.Conditions = append(p.Conditions, "permanently_closed = false")
	}

	// Iterate declared specs, not the input map, so fragment order is
	// deterministic for identical inputs.
	for _, f := range s.Filters {
		raw, ok := filters[f.Name]
		if !ok || raw == "" {
			continue
		}

		if f.Op == OpAnyOf {
			values := splitList(raw)
			if len(values) == 0 {
				continue
			}
			p.Append(f.Column+" = ANY($%d::text[])", pq.Array(values))
			continue
		}

		value, err := parseValue(f, raw)
		if err != nil {
			return nil, err
		}
		p.Append(f.Column+" "+f.Op.sql()+" $%d", value)
	}

	return p, nil
}

func (op Operator) sql() string {
	switch op {
	case OpMin:
		return ">="
	case OpMax:
		return "<="
	default:
		return "="
	}
}

func parseValue(f FieldSpec, raw string) (interface{}, error) {
	switch f.Type {
	case FieldInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.InvalidFilter("filter %q expects an integer, got %q", f.Name, raw)
		}
		return v, nil
	case FieldFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.InvalidFilter("filter %q expects a number, got %q", f.Name, raw)
		}
		return v, nil
	case FieldBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.InvalidFilter("filter %q expects a boolean, got %q", f.Name, raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}

// splitList turns a comma-delimited text list into trimmed, de-duplicated
// values with empty entries removed.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
