package sorter

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skerrors "github.com/computerscienceiscool/scriptkit/internal/errors"
)

func TestSortStringsIgnoringSpaces(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "russian base sensitivity",
			input: []string{"Ёлка", "Арбуз", "ёж"},
			want:  []string{"Арбуз", "ёж", "Ёлка"},
		},
		{
			name:  "case ignored",
			input: []string{"banana", "Apple", "cherry"},
			want:  []string{"Apple", "banana", "cherry"},
		},
		{
			name:  "whitespace ignored",
			input: []string{"Leanne Graham", "Ervin Howell", "Clementine Bauch", "Patricia Lebsack", "Chelsey Dietrich"},
			want:  []string{"Chelsey Dietrich", "Clementine Bauch", "Ervin Howell", "Leanne Graham", "Patricia Lebsack"},
		},
		{
			name:  "space inside word does not split it",
			input: []string{"ab c", "a bd"},
			want:  []string{"ab c", "a bd"},
		},
		{
			name:  "equal keys keep input order",
			input: []string{"ел ка", "Елка", "ёлка", "елка"},
			want:  []string{"ел ка", "Елка", "ёлка", "елка"},
		},
		{
			name:  "empty input",
			input: []string{},
			want:  []string{},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortStringsIgnoringSpaces(tt.input))
		})
	}
}

func TestSortStringsIgnoringSpaces_DoesNotMutate(t *testing.T) {
	input := []string{"Ёлка", "Арбуз", "ёж"}
	original := append([]string(nil), input...)

	sorted := SortStringsIgnoringSpaces(input)

	assert.Equal(t, original, input)
	sorted[0] = "changed"
	assert.Equal(t, original, input, "result must not share storage with input")
}

func TestSortStringsIgnoringSpaces_CyrillicOrder(t *testing.T) {
	got := SortStringsIgnoringSpaces([]string{"яблоко", "Борщ", "арбуз", "Вода"})
	assert.Equal(t, []string{"арбуз", "Борщ", "Вода", "яблоко"}, got)
}

func TestSortStringsIgnoringSpaces_MixedScripts(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "cyrillic before latin",
			input: []string{"apple", "арбуз", "Zebra", "ёж", "Ёлка", "Еж"},
			want:  []string{"арбуз", "ёж", "Еж", "Ёлка", "apple", "Zebra"},
		},
		{
			name:  "script decides at the first differing letter",
			input: []string{"ба", "аb", "аб"},
			want:  []string{"аб", "аb", "ба"},
		},
		{
			name:  "digits before every script",
			input: []string{"word", "слово", "42"},
			want:  []string{"42", "слово", "word"},
		},
		{
			name:  "latin words keep their own order",
			input: []string{"Zebra", "apple", "Mango"},
			want:  []string{"apple", "Mango", "Zebra"},
		},
		{
			name:  "whitespace ignored across scripts",
			input: []string{"b a", "б а", "ab"},
			want:  []string{"б а", "ab", "b a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortStringsIgnoringSpaces(tt.input))
		})
	}
}

func TestSortStringsIgnoringSpaces_DecomposedDiacritics(t *testing.T) {
	// "е" followed by a combining diaeresis compares equal to "еж".
	got := SortStringsIgnoringSpaces([]string{"е\u0308ж", "дом", "еж"})
	assert.Equal(t, []string{"дом", "е\u0308ж", "еж"}, got)
}

func TestSort(t *testing.T) {
	t.Run("string slice", func(t *testing.T) {
		got, err := Sort([]string{"b", "a"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("decoded json array", func(t *testing.T) {
		var v any
		require.NoError(t, json.Unmarshal([]byte(`["ёж", "Арбуз", 10, 2.5]`), &v))

		got, err := Sort(v)
		require.NoError(t, err)
		assert.Equal(t, []string{"10", "2.5", "Арбуз", "ёж"}, got)
	})

	t.Run("null elements read as null", func(t *testing.T) {
		var v any
		require.NoError(t, json.Unmarshal([]byte(`["б", null, true]`), &v))

		got, err := Sort(v)
		require.NoError(t, err)
		assert.Equal(t, []string{"б", "null", "true"}, got)
	})

	t.Run("non-sequences are rejected", func(t *testing.T) {
		for _, v := range []any{"just a string", 42, nil, map[string]any{"a": 1}, 3.14} {
			_, err := Sort(v)
			require.Error(t, err)
			assert.True(t, errors.Is(err, skerrors.ErrInvalidArgument), "value %v: %v", v, err)

			var valErr *skerrors.ValidationError
			assert.True(t, errors.As(err, &valErr))
		}
	})
}

func TestCoerce(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`["ёж", null, 10, 2.5, false]`), &v))

	got, err := Coerce(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"ёж", "null", "10", "2.5", "false"}, got, "input order is kept")

	input := []string{"b", "a"}
	got, err = Coerce(input)
	require.NoError(t, err)
	got[0] = "changed"
	assert.Equal(t, []string{"b", "a"}, input)

	_, err = Coerce(map[string]any{"a": 1})
	assert.True(t, errors.Is(err, skerrors.ErrInvalidArgument))
}
