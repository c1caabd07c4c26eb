package schema_test

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citystrata-service/internal/domain"
	"github.com/citystrata-service/internal/pkg/errors"
	"github.com/citystrata-service/internal/schema"
)

const testCityCode = 2600

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// assertPlaceholderInvariant checks the compiler's core invariant: the
// argument list length equals the number of placeholders, and placeholders
// are numbered sequentially in fragment order.
func assertPlaceholderInvariant(t *testing.T, p *schema.Predicate) {
	t.Helper()

	matches := placeholderRe.FindAllStringSubmatch(p.Where(), -1)
	require.Len(t, p.Args, len(matches), "argument count must match placeholder count")

	for i, m := range matches {
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		assert.Equal(t, i+1, n, "placeholders must be numbered in fragment order")
	}
}

func mustDescribe(t *testing.T, kind domain.ResourceKind) *schema.ResourceSchema {
	t.Helper()
	s, err := schema.Describe(kind)
	require.NoError(t, err)
	return s
}

func TestCompile_BaseConditionsOnly(t *testing.T) {
	s := mustDescribe(t, domain.KindLodging)

	p, err := schema.Compile(s, nil, testCityCode)
	require.NoError(t, err)

	assert.Equal(t, "city_code = $1", p.Where())
	assert.Equal(t, []interface{}{testCityCode}, p.Args)
	assertPlaceholderInvariant(t, p)
}

func TestCompile_ClosableKindExcludesClosed(t *testing.T) {
	s := mustDescribe(t, domain.KindDining)

	p, err := schema.Compile(s, map[string]string{"min_score": "4"}, testCityCode)
	require.NoError(t, err)

	// The closed-status exclusion carries no argument, so placeholder
	// numbering must still line up.
	assert.Equal(t, "city_code = $1 AND permanently_closed = false AND total_score >= $2", p.Where())
	assert.Equal(t, []interface{}{testCityCode, 4.0}, p.Args)
	assertPlaceholderInvariant(t, p)
}

func TestCompile_AllFilterOperators(t *testing.T) {
	s := mustDescribe(t, domain.KindLodging)

	p, err := schema.Compile(s, map[string]string{
		"area":         "3",
		"min_capacity": "4",
		"min_rating":   "4.5",
		"max_price":    "300",
	}, testCityCode)
	require.NoError(t, err)

	assert.Equal(t,
		"city_code = $1 AND area_code = $2 AND person_capacity >= $3 AND rating_value >= $4 AND price_per_night <= $5",
		p.Where(),
	)
	assert.Equal(t, []interface{}{testCityCode, 3, 4, 4.5, 300.0}, p.Args)
	assertPlaceholderInvariant(t, p)
}

func TestCompile_DeterministicFragmentOrder(t *testing.T) {
	s := mustDescribe(t, domain.KindLodging)
	filters := map[string]string{
		"max_price":  "200",
		"area":       "7",
		"min_rating": "3.5",
	}

	first, err := schema.Compile(s, filters, testCityCode)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		again, err := schema.Compile(s, filters, testCityCode)
		require.NoError(t, err)
		assert.Equal(t, first.Where(), again.Where())
		assert.Equal(t, first.Args, again.Args)
	}
}

func TestCompile_UnknownFieldRejected(t *testing.T) {
	s := mustDescribe(t, domain.KindLodging)

	p, err := schema.Compile(s, map[string]string{"color": "red"}, testCityCode)
	require.Error(t, err)
	assert.Nil(t, p)

	appErr, ok := errors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeInvalidFilter, appErr.Code)
}

func TestCompile_TypeMismatchRejected(t *testing.T) {
	s := mustDescribe(t, domain.KindLodging)

	cases := map[string]map[string]string{
		"int field":   {"min_capacity": "four"},
		"float field": {"min_rating": "high"},
	}

	for name, filters := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := schema.Compile(s, filters, testCityCode)
			require.Error(t, err)

			appErr, ok := errors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, errors.CodeInvalidFilter, appErr.Code)
		})
	}
}

func TestCompile_EmptyValuesSkipped(t *testing.T) {
	s := mustDescribe(t, domain.KindLodging)

	p, err := schema.Compile(s, map[string]string{"area": "", "min_rating": ""}, testCityCode)
	require.NoError(t, err)
	assert.Equal(t, "city_code = $1", p.Where())
}

func TestCompile_SetMembershipList(t *testing.T) {
	s := mustDescribe(t, domain.KindFacility)

	p, err := schema.Compile(s, map[string]string{
		"facility_types": "school, park,,school , pharmacy",
	}, testCityCode)
	require.NoError(t, err)

	assert.Equal(t, "city_code = $1 AND facility_type = ANY($2::text[])", p.Where())
	require.Len(t, p.Args, 2)
	assert.Equal(t, pq.Array([]string{"school", "park", "pharmacy"}), p.Args[1])
	assertPlaceholderInvariant(t, p)
}

func TestCompile_SetMembershipAllEmptyEntriesSkipsFilter(t *testing.T) {
	s := mustDescribe(t, domain.KindFacility)

	p, err := schema.Compile(s, map[string]string{"facility_types": " , ,"}, testCityCode)
	require.NoError(t, err)
	assert.Equal(t, "city_code = $1", p.Where())
}

func TestPredicate_AppendKeepsNumbering(t *testing.T) {
	s := mustDescribe(t, domain.KindInstitution)

	p, err := schema.Compile(s, map[string]string{"area": "5"}, testCityCode)
	require.NoError(t, err)

	p.Append("institution_code = $%d", "612040")
	assert.Equal(t, "city_code = $1 AND area_code = $2 AND institution_code = $3", p.Where())
	assert.Equal(t, []interface{}{testCityCode, 5, "612040"}, p.Args)
	assertPlaceholderInvariant(t, p)
}
