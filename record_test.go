package yamlpage

import (
	"testing"

	"github.com/alecthomas/assert"
)

func TestRecordSetGet(t *testing.T) {
	r := &Record{}
	r.Set("title", "foo")
	r.Set("body", "bar")

	v, ok := r.Get("title")
	assert.True(t, ok)
	assert.Equal(t, "foo", v)

	_, ok = r.Get("missing")
	assert.False(t, ok)

	// replacing keeps the field's position
	r.Set("title", "baz")
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "title", r.Fields[0].Name)
	assert.Equal(t, "baz", r.Fields[0].Value)
}

func TestRecordScalars(t *testing.T) {
	r := NewRecord("n", 42, "ok", true, "pi", 3.5)
	tests := []struct {
		name string
		want string
	}{
		{"n", "42"},
		{"ok", "true"},
		{"pi", "3.5"},
	}
	for _, tc := range tests {
		v, ok := r.Get(tc.name)
		assert.True(t, ok, "name: %q", tc.name)
		assert.Equal(t, tc.want, v, "name: %q", tc.name)
	}
}

func TestNewRecordOddArgs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	NewRecord("title", "foo", "body")
}
