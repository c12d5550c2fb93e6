package yamlpage

// Field is a single named value of a page.
type Field struct {
	Name  string
	Value string
}

// Record represents the ordered list of fields that make up a page.
// Order is preserved when the record is written to disk so that output
// stays stable and diffable; reads look fields up by name.
type Record struct {
	Fields []Field
}

// NewRecord builds a record from name/value pairs:
//
//	NewRecord("title", "foo", "body", "foo\nbar")
//
// Values can be any scalar (string, number, bool); they are stored in
// their textual form. Panics on an odd number of args.
func NewRecord(args ...any) *Record {
	panicIf(len(args)%2 != 0, "NewRecord: invalid number of args: %d, should be multiple of 2", len(args))
	r := &Record{}
	for i := 0; i < len(args); i += 2 {
		r.Set(toStr(args[i]), args[i+1])
	}
	return r
}

// Set appends a field or replaces the value of an existing one,
// keeping its position.
func (r *Record) Set(name string, value any) {
	v := toStr(value)
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			r.Fields[i].Value = v
			return
		}
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: v})
}

// Get returns a value for a given field name.
func (r *Record) Get(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.Fields)
}
