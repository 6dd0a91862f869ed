package specspec

// StrOpt carries the optional constraints for ValidateStr.
type StrOpt struct {
	MinLen  *int
	MaxLen  *int
	Pattern string
}

// NumOpt carries the optional constraints for ValidateNum.
type NumOpt struct {
	Min     *float64
	Max     *float64
	Integer bool
}

// FieldOpt configures ValidateField.
type FieldOpt struct {
	Optional  bool
	Validator Validator
}

// ListOpt carries the optional constraints for ValidateList.
type ListOpt struct {
	MinItems *int
	MaxItems *int
	Item     Validator
}

// OneOfOpt configures ValidateOneOf.
type OneOfOpt struct {
	// Descriptions name the alternatives for the no-match message, in
	// candidate order.
	Descriptions []string
}

// BundleOpt configures ValidateBundle.
type BundleOpt struct {
	AcceptDir     bool
	AcceptArchive bool
	// ArchiveExt is an additional archive extension accepted alongside
	// ".zip" (leading dot optional).
	ArchiveExt string
	// NamePattern, when set, is a regex the bundle basename must match.
	NamePattern string
	Content     BundleValidator
}

// IntPtr returns a pointer to n, for optional constraint fields.
func IntPtr(n int) *int { return &n }

// FloatPtr returns a pointer to f, for optional constraint fields.
func FloatPtr(f float64) *float64 { return &f }
