package item

// Friend is a contact the user can send money to.
type Friend struct {
	Name  string
	Phone string
}
