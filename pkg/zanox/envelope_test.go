package zanox_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItems_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "array", input: `["DE", "AT"]`, expected: []string{"DE", "AT"}},
		{name: "single value", input: `"DE"`, expected: []string{"DE"}},
		{name: "null", input: `null`, expected: nil},
		{name: "empty string", input: `""`, expected: nil},
		{name: "empty array", input: `[]`, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var items zanox.Items[string]

			require.NoError(t, json.Unmarshal([]byte(tt.input), &items))
			assert.Equal(t, tt.expected, []string(items))
		})
	}
}

func TestDecodeEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("array of items", func(t *testing.T) {
		t.Parallel()

		body := `{"page": 0, "items": 2, "total": 37, "programItems": {"programItem": [
			{"@id": "1", "$": "Shoes"},
			{"@id": 2, "$": "Books"}
		]}}`

		envelope, err := zanox.DecodeEnvelope[zanox.Program]([]byte(body), "programItems", "programItem")
		require.NoError(t, err)
		assert.Equal(t, 37, envelope.Total)
		require.Len(t, envelope.Items, 2)
		assert.Equal(t, 1, envelope.Items[0].Identifier())
		assert.Equal(t, "Books", envelope.Items[1].Name)
		assert.True(t, envelope.Items[1].IsShort())
	})

	t.Run("single object", func(t *testing.T) {
		t.Parallel()

		body := `{"total": "1", "programItems": {"programItem": {"@id": "5", "$": "Garden"}}}`

		envelope, err := zanox.DecodeEnvelope[zanox.Program]([]byte(body), "programItems", "programItem")
		require.NoError(t, err)
		assert.Equal(t, 1, envelope.Total)
		require.Len(t, envelope.Items, 1)
		assert.Equal(t, "Garden", envelope.Items[0].Name)
	})

	t.Run("wrapper as array", func(t *testing.T) {
		t.Parallel()

		body := `{"total": 1, "programItems": [{"programItem": [{"@id": "5", "$": "Garden"}]}]}`

		envelope, err := zanox.DecodeEnvelope[zanox.Program]([]byte(body), "programItems", "programItem")
		require.NoError(t, err)
		require.Len(t, envelope.Items, 1)
	})

	t.Run("missing wrapper", func(t *testing.T) {
		t.Parallel()

		envelope, err := zanox.DecodeEnvelope[zanox.Program]([]byte(`{"total": 0}`), "programItems", "programItem")
		require.NoError(t, err)
		assert.Zero(t, envelope.Total)
		assert.Empty(t, envelope.Items)
	})

	t.Run("missing total", func(t *testing.T) {
		t.Parallel()

		body := `{"programItems": {"programItem": [{"@id": "1", "$": "A"}]}}`

		_, err := zanox.DecodeEnvelope[zanox.Program]([]byte(body), "programItems", "programItem")

		parseErr := &zanox.ParseError{}
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "envelope", parseErr.Resource)
		assert.Equal(t, []string{"total"}, parseErr.Missing)
	})

	t.Run("null total", func(t *testing.T) {
		t.Parallel()

		_, err := zanox.DecodeEnvelope[zanox.Program]([]byte(`{"total": null}`), "programItems", "programItem")
		assert.True(t, zanox.IsParseError(err))
	})

	t.Run("empty string wrapper", func(t *testing.T) {
		t.Parallel()

		envelope, err := zanox.DecodeEnvelope[zanox.Program]([]byte(`{"total": 0, "programItems": ""}`), "programItems", "programItem")
		require.NoError(t, err)
		assert.Empty(t, envelope.Items)
	})

	t.Run("not an object", func(t *testing.T) {
		t.Parallel()

		_, err := zanox.DecodeEnvelope[zanox.Program]([]byte(`[1, 2]`), "programItems", "programItem")
		require.Error(t, err)
	})

	t.Run("malformed item", func(t *testing.T) {
		t.Parallel()

		body := `{"total": 1, "programItems": {"programItem": [{"@id": "5", "name": "Garden"}]}}`

		_, err := zanox.DecodeEnvelope[zanox.Program]([]byte(body), "programItems", "programItem")
		require.Error(t, err)
		assert.True(t, zanox.IsParseError(err))
	})
}

func TestDecodeItem(t *testing.T) {
	t.Parallel()

	t.Run("first element", func(t *testing.T) {
		t.Parallel()

		body := `{"programItem": [{"@id": "7", "$": "Travel"}, {"@id": "8", "$": "Cars"}]}`

		program, err := zanox.DecodeItem[zanox.Program]([]byte(body), "programItem")
		require.NoError(t, err)
		require.NotNil(t, program)
		assert.Equal(t, 7, program.Identifier())
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		for _, body := range []string{`{}`, `{"programItem": []}`, `{"programItem": null}`,
			`{"programItem": [{}]}`, `{"programItem": {}}`, `{"programItem": ""}`,
		} {
			program, err := zanox.DecodeItem[zanox.Program]([]byte(body), "programItem")
			require.NoError(t, err)
			assert.Nil(t, program, body)
		}
	})
}
