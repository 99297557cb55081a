package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageDecodesEnvelope(t *testing.T) {
	payload := `{
		"content": [{"id": 1}, {"id": 2}],
		"totalElements": 41,
		"totalPages": 3,
		"currentPage": 2,
		"pageSize": 20,
		"hasNext": false,
		"hasPrevious": true
	}`

	var page Page[Screening]
	require.NoError(t, json.Unmarshal([]byte(payload), &page))

	require.Len(t, page.Content, 2)
	assert.Equal(t, int64(41), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 20, page.Size)
	assert.False(t, page.HasNext(), "page 3 of 3 has no next page")
}

func TestPageDecodesBareArray(t *testing.T) {
	var page Page[Screening]
	require.NoError(t, json.Unmarshal([]byte(`[{"id": 1}]`), &page))

	require.Len(t, page.Content, 1)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, 0, page.Number)
	assert.False(t, page.HasNext())
}

func TestAuditLogPageDecodesContent(t *testing.T) {
	payload := `{
		"content": [{
			"revisionId": 17,
			"timestamp": "2026-03-14T12:00:00",
			"username": "admin",
			"entityType": "Movie",
			"entityId": 3,
			"revisionType": "MOD",
			"entityName": "Heat"
		}],
		"totalElements": 1,
		"totalPages": 1,
		"currentPage": 0,
		"pageSize": 50,
		"hasNext": false,
		"hasPrevious": false
	}`

	var page AuditLogPage
	require.NoError(t, json.Unmarshal([]byte(payload), &page))

	require.Len(t, page.Logs, 1)
	assert.Equal(t, int64(17), page.Logs[0].RevisionID)
	assert.Equal(t, "Movie", page.Logs[0].EntityType)
	assert.Equal(t, 0, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
}
