package ports

type CodeGenerator interface {
	// Generate returns a 6-digit numeric code, leading zeros preserved.
	Generate() (string, error)
}
