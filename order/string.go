package order

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
