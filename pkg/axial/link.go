package axial

// Link records, for a block or component, the object immediately below it in
// the assembly stack. A nil Below means nothing is below (bottom of the
// assembly, or no geometric match). Links are rebuilt fresh for every
// expansion operation and never persisted.
type Link[T any] struct {
	Below T
}
