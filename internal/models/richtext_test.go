package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRichTextPlainTextFold(t *testing.T) {
	tests := []struct {
		name string
		rt   RichText
		want string
	}{
		{"plain passthrough", PlainRichText("hello world"), "hello world"},
		{"empty", RichText{}, ""},
		{
			"flat nodes",
			TreeRichText(
				RichTextNode{Text: "first"},
				RichTextNode{Text: "second"},
			),
			"first second",
		},
		{
			"nested nodes",
			TreeRichText(
				RichTextNode{Text: "intro", Children: []RichTextNode{
					{Text: "  nested  "},
					{Children: []RichTextNode{{Text: "deep"}}},
				}},
				RichTextNode{Text: "outro"},
			),
			"intro nested deep outro",
		},
		{
			"blank leaves dropped",
			TreeRichText(
				RichTextNode{Text: "   "},
				RichTextNode{Text: "kept"},
				RichTextNode{Text: ""},
			),
			"kept",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rt.PlainText())
		})
	}
}

func TestRichTextUnmarshal(t *testing.T) {
	var rt RichText
	require.NoError(t, json.Unmarshal([]byte(`"plain description"`), &rt))
	assert.False(t, rt.IsTree())
	assert.Equal(t, "plain description", rt.Plain)

	require.NoError(t, json.Unmarshal([]byte(`[{"text":"a"},{"text":"b"}]`), &rt))
	assert.True(t, rt.IsTree())
	assert.Equal(t, "a b", rt.PlainText())

	require.NoError(t, json.Unmarshal([]byte(`{"text":"solo"}`), &rt))
	assert.True(t, rt.IsTree())
	assert.Equal(t, "solo", rt.PlainText())

	require.NoError(t, json.Unmarshal([]byte(`null`), &rt))
	assert.True(t, rt.IsZero())
}
