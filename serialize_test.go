package yamlpage

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert"
)

func TestMarshalRecord(t *testing.T) {
	tests := []struct {
		name string
		rec  *Record
		want string
	}{
		{
			name: "plain scalars in order",
			rec:  NewRecord("title", "foo", "author", "bar"),
			want: "title: foo\nauthor: bar\n",
		},
		{
			name: "number-like value stays a string",
			rec:  NewRecord("n", "42"),
			want: "n: \"42\"\n",
		},
		{
			name: "bool-like value stays a string",
			rec:  NewRecord("ok", "true"),
			want: "ok: \"true\"\n",
		},
		{
			name: "multiline without trailing newline, strip chomping",
			rec:  NewRecord("body", "foo\nbar"),
			want: "body: |-\n    foo\n    bar\n",
		},
		{
			name: "multiline with trailing newline, clip chomping",
			rec:  NewRecord("body", "foo\nbar\n"),
			want: "body: |\n    foo\n    bar\n",
		},
		{
			name: "empty record",
			rec:  &Record{},
			want: "{}\n",
		},
	}
	for _, tc := range tests {
		d, err := marshalRecord(tc.rec)
		assert.NoError(t, err, "test: %s", tc.name)
		assert.Equal(t, tc.want, string(d), "test: %s", tc.name)
	}
}

func TestRoundTripValues(t *testing.T) {
	values := []string{
		"foo",
		"",
		"42",
		"true",
		"null",
		"foo\nbar",
		"foo\nbar\n",
		"foo\n\nbar",
		"foo\n\n\nbar\n",
		"\n",
		"\n\n",
		"\n\nx",
		"\nleading newline",
		"foo\tbar",
		"foo\rbar",
		"trailing space \nnext",
		": starts like yaml",
		"- starts like a list",
		"ünïcödé ✓",
	}
	for _, v := range values {
		d, err := marshalRecord(NewRecord("v", v))
		assert.NoError(t, err, "value: %q", v)
		rec, err := unmarshalRecord(d)
		assert.NoError(t, err, "value: %q", v)
		got, ok := rec.Get("v")
		assert.True(t, ok, "value: %q", v)
		assert.Equal(t, v, got, "value: %q", v)
	}
}

func TestUnmarshalEmpty(t *testing.T) {
	rec, err := unmarshalRecord(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, rec.Len())
}

func TestUnmarshalErrors(t *testing.T) {
	inputs := []string{
		"- 1\n- 2\n",        // sequence at top level
		"just a scalar\n",   // scalar at top level
		"a: [1, 2]\n",       // non-scalar value
		"a: {b: c}\n",       // nested mapping
		"a: [unclosed\n",    // parse error
		"\ta: b\n",          // tab indentation
	}
	for _, in := range inputs {
		_, err := unmarshalRecord([]byte(in))
		assert.Error(t, err, "input: %q", in)
		assert.True(t, errors.Is(err, ErrMalformed), "input: %q", in)
	}
}
