package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmai/taskboard/internal/catalog"
)

func TestEntriesReturnsFullCatalog(t *testing.T) {
	entries := catalog.Entries()
	assert.Len(t, entries, 10)
	assert.Equal(t, "Website Redesign Project", entries[0].Name)
}

func TestEntriesReturnsCopy(t *testing.T) {
	entries := catalog.Entries()
	entries[0].Name = "mutated"

	assert.Equal(t, "Website Redesign Project", catalog.Entries()[0].Name)
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	assert.Len(t, catalog.Search(""), 10)
	assert.Len(t, catalog.Search("   "), 10)
}

func TestSearchMatchesName(t *testing.T) {
	results := catalog.Search("Database Migration")
	require.NotEmpty(t, results)
	assert.Equal(t, "Database Migration", results[0].Name)
}

func TestSearchMatchesKeywordsAndTags(t *testing.T) {
	results := catalog.Search("GDPR")
	require.NotEmpty(t, results)

	found := false
	for _, e := range results {
		if e.Name == "Security Audit & Compliance" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSearchNoMatches(t *testing.T) {
	assert.Empty(t, catalog.Search("zzzzqqqqxxxx"))
}
