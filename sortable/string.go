package sortable

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan compares byte-wise, the same as the built-in string ordering.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
