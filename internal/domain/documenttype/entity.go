package documenttype

type (
	DocumentType struct {
		ID          uint64
		Name        string
		Description string
	}
	DocumentTypes []*DocumentType
)
