package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaRefUnmarshal(t *testing.T) {
	var ref MediaRef
	require.NoError(t, json.Unmarshal([]byte(`"media-42"`), &ref))
	assert.False(t, ref.IsExpanded())
	assert.Equal(t, "media-42", ref.Ref)

	require.NoError(t, json.Unmarshal([]byte(`42`), &ref))
	assert.False(t, ref.IsExpanded())
	assert.Equal(t, "42", ref.Ref)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"m1","url":"/images/a.jpg","alt":"A"}`), &ref))
	require.True(t, ref.IsExpanded())
	assert.Equal(t, "/images/a.jpg", ref.Media.URL)

	require.NoError(t, json.Unmarshal([]byte(`null`), &ref))
	assert.True(t, ref.IsZero())
}

func TestMediaRefMarshal(t *testing.T) {
	data, err := json.Marshal(RefMedia("media-7"))
	require.NoError(t, err)
	assert.JSONEq(t, `"media-7"`, string(data))

	data, err = json.Marshal(ExpandedMedia(Media{ID: "m2", URL: "/images/b.jpg"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"m2","url":"/images/b.jpg"}`, string(data))
}
