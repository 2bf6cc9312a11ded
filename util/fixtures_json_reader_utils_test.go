package util

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"district-server/models"
	"district-server/models/crowd"
	"district-server/resources"
)

func TestReadJSONFromFS_HomeFeed(t *testing.T) {
	// Arrange
	fsys := fstest.MapFS{
		"home.json": {Data: []byte(`{
			"title": "混雑度可視化",
			"subtitle": "sub",
			"stats": [{"value": "142%", "label": "前日比"}],
			"todayEvent": {"title": "t", "description": "d"},
			"weather": {"icon": "cloud-sun", "temp": "20°C"}
		}`)},
	}

	// Act
	var home models.HomeFeed
	err := ReadJSONFromFS(fsys, "home.json", &home)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "混雑度可視化", home.Title)
	require.Len(t, home.Stats, 1)
	assert.Equal(t, "142%", home.Stats[0].Value)
	assert.Equal(t, "cloud-sun", home.Weather.Icon)
}

func TestReadJSONFromFS_MissingFile(t *testing.T) {
	var home models.HomeFeed
	err := ReadJSONFromFS(fstest.MapFS{}, "nope.json", &home)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope.json"`)
}

func TestReadJSONFromFS_RejectsUnknownFields(t *testing.T) {
	fsys := fstest.MapFS{"home.json": {Data: []byte(`{"title": "x", "tittle": "typo"}`)}}

	var home models.HomeFeed
	err := ReadJSONFromFS(fsys, "home.json", &home)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tittle")
}

func TestDecodeJSON_RejectsTrailingData(t *testing.T) {
	var s models.Stat
	err := DecodeJSON(strings.NewReader(`{"value":"1","label":"a"} {}`), &s)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing data")
}

func TestDecodeJSON_Malformed(t *testing.T) {
	var s models.Stat
	err := DecodeJSON(strings.NewReader(`{"value":`), &s)

	assert.Error(t, err)
}

func TestReadJSONFromFS_EmbeddedCrowdData(t *testing.T) {
	var fixture crowd.CrowdFixture
	err := ReadJSONFromFS(resources.FS, "crowd_data.json", &fixture)

	require.NoError(t, err)
	assert.Equal(t, "シーバンス夏祭り", fixture.Events["1"].Event.Name)
	assert.Equal(t, "150%", fixture.Default.Crowdness.Percentage)
	assert.Len(t, fixture.HourlyTrendData, 8)
	assert.Len(t, fixture.DailyComparisonData, 5)
}
