package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name     string
	Location string
	Status   string
	Priority string
}

var people = Schema[person]{
	Search: []func(person) string{
		func(p person) string { return p.Name },
		func(p person) string { return p.Location },
	},
	Enums: map[string]func(person) string{
		"status":   func(p person) string { return p.Status },
		"priority": func(p person) string { return p.Priority },
	},
}

func fixtures() []person {
	return []person{
		{Name: "Sarah Johnson", Location: "Downtown Metro Area", Status: "active", Priority: "high"},
		{Name: "Michael Chen", Location: "Riverside District", Status: "resolved", Priority: "medium"},
		{Name: "Emma Rodriguez", Location: "University Campus", Status: "active", Priority: "high"},
	}
}

func TestApplyQueryScenario(t *testing.T) {
	records := []person{
		{Name: "Sarah Johnson", Status: "active"},
		{Name: "Michael Chen", Status: "resolved"},
	}
	got := Apply(records, people, Criteria{Query: "chen", Enums: map[string]string{"status": All}})
	assert.Equal(t, []person{{Name: "Michael Chen", Status: "resolved"}}, got)
}

func TestApplyMatchAllReturnsInput(t *testing.T) {
	records := fixtures()
	got := Apply(records, people, Criteria{Query: "", Enums: map[string]string{"status": "all"}})
	assert.Equal(t, records, got)

	got = Apply(records, people, Criteria{})
	assert.Equal(t, records, got)
}

func TestApplyIsIdempotent(t *testing.T) {
	criteria := []Criteria{
		{},
		{Query: "a"},
		{Query: "DOWNTOWN"},
		{Enums: map[string]string{"status": "active"}},
		{Query: "r", Enums: map[string]string{"status": "active", "priority": "high"}},
		{Query: "zzz"},
	}
	for _, c := range criteria {
		once := Apply(fixtures(), people, c)
		twice := Apply(once, people, c)
		assert.Equal(t, once, twice, "criteria %+v", c)
	}
}

func TestApplyCaseInsensitiveAcrossFields(t *testing.T) {
	got := Apply(fixtures(), people, Criteria{Query: "CAMPUS"})
	require.Len(t, got, 1)
	assert.Equal(t, "Emma Rodriguez", got[0].Name)

	got = Apply(fixtures(), people, Criteria{Query: "michael c"})
	require.Len(t, got, 1)
	assert.Equal(t, "Michael Chen", got[0].Name)
}

func TestApplyUsesCriteriaVerbatim(t *testing.T) {
	got := Apply(fixtures(), people, Criteria{Query: " "})
	assert.Len(t, got, 3, "every fixture has a space in a searched field")

	got = Apply(fixtures(), people, Criteria{Query: "  CAMPUS "})
	assert.Empty(t, got)

	got = Apply(fixtures(), people, Criteria{Enums: map[string]string{"status": "ALL"}})
	assert.Empty(t, got)

	got = Apply(fixtures(), people, Criteria{Enums: map[string]string{"status": " active"}})
	assert.Empty(t, got)
}

func TestApplyCombinesWithAnd(t *testing.T) {
	got := Apply(fixtures(), people, Criteria{Query: "a", Enums: map[string]string{"status": "active", "priority": "high"}})
	require.Len(t, got, 2)
	assert.Equal(t, "Sarah Johnson", got[0].Name)
	assert.Equal(t, "Emma Rodriguez", got[1].Name)

	got = Apply(fixtures(), people, Criteria{Query: "chen", Enums: map[string]string{"status": "active"}})
	assert.Empty(t, got)
}

func TestApplyIgnoresUnknownDimension(t *testing.T) {
	got := Apply(fixtures(), people, Criteria{Enums: map[string]string{"colour": "blue"}})
	assert.Len(t, got, 3)
}

func TestApplyDoesNotMutateOrAlias(t *testing.T) {
	records := fixtures()
	snapshot := fixtures()

	got := Apply(records, people, Criteria{})
	require.Len(t, got, len(records))
	got[0].Name = "changed"

	assert.Equal(t, snapshot, records)
}

func TestApplyEmptyInput(t *testing.T) {
	got := Apply(nil, people, Criteria{Query: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("q", "chen")
	values.Set("status", "resolved")
	values.Set("ignored", "x")

	c := FromQuery(values, people)
	assert.Equal(t, "chen", c.Query)
	assert.Equal(t, map[string]string{"status": "resolved"}, c.Enums)

	empty := FromQuery(url.Values{}, people)
	assert.Equal(t, Criteria{}, empty)
}

func TestNewResultEmptyState(t *testing.T) {
	res := NewResult(fixtures(), people, Criteria{Query: "nobody"}, "No cases found")
	assert.True(t, res.Empty)
	assert.Equal(t, "No cases found", res.EmptyMessage)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 0, res.Matched)
	assert.NotNil(t, res.Items)

	res = NewResult(fixtures(), people, Criteria{Query: "chen"}, "No cases found")
	assert.False(t, res.Empty)
	assert.Empty(t, res.EmptyMessage)
	assert.Equal(t, 1, res.Matched)
}
