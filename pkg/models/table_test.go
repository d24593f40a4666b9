package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	var first, second Record
	require.NoError(t, json.Unmarshal([]byte(pageJSON), &first))
	second = Record{
		ID: "second",
		Properties: []NamedProperty{
			{Name: "Name", Property: NewProperty(TitleValue{Spans: []RichText{Text("Other")}})},
			{Name: "Done", Property: NewProperty(CheckboxValue{Checked: true})},
		},
	}

	table := NewTable("Tasks", []Record{first, second})

	assert.Equal(t, "Tasks", table.Title)
	assert.Equal(t, []string{"Status", "Name", "Done"}, table.Columns)
	assert.Equal(t, []TableRow{
		{ID: first.ID, Cells: []string{"Open", "Ship it", "✗"}},
		{ID: "second", Cells: []string{"", "Other", "✓"}},
	}, table.Rows)
}

func TestNewTable_empty(t *testing.T) {
	table := NewTable("Empty", nil)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)

	out, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Empty","columns":[],"rows":[]}`, string(out))
}
