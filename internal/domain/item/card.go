package item

// Card is a payment card registered by the user.
type Card struct {
	Number string
	Holder string
}
