package team

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemberWhereQuery(t *testing.T) {
	query := memberWhereQuery(7, "")
	assert.Contains(t, query, "team_lead_id = 7")
	assert.NotContains(t, query, "ilike")

	query = memberWhereQuery(7, "ann")
	assert.Contains(t, query, `username ilike '%ann%'`)
	assert.Contains(t, query, `email ilike '%ann%'`)
}

func TestMemberWhereQueryEscapesQuotes(t *testing.T) {
	query := memberWhereQuery(7, "o'brien")
	assert.Contains(t, query, `'%o''brien%'`)
	assert.NotContains(t, query, `'%o'brien%'`)
}

func TestEscapeQuotes(t *testing.T) {
	assert.Equal(t, "o''brien", escapeQuotes("o'brien"))
	assert.Equal(t, "it''s ''fine''", escapeQuotes("it's 'fine'"))
	assert.Equal(t, "plain", escapeQuotes("plain"))
}

func TestMemberListQuery(t *testing.T) {
	active := memberListQuery(true)
	assert.Contains(t, active, "is_active = true")

	all := memberListQuery(false)
	assert.NotContains(t, all, "is_active")
	assert.True(t, strings.HasSuffix(all, "ORDER BY username asc"))
}
