package types

import "github.com/samber/lo"

// FieldName identifies a named value flowing through schemas: transaction
// fields, shipping plan fields and rule construction parameters all share
// this namespace. The string value is the alias used in configuration.
type FieldName string

const (
	FieldDate        FieldName = "date"
	FieldCarrier     FieldName = "carrier"
	FieldPackageSize FieldName = "package_size"
	FieldPrice       FieldName = "price"
	FieldLimit       FieldName = "limit"
	FieldN           FieldName = "n"
	FieldXTimes      FieldName = "x_times"
)

// MatchFields are the fields a match filter may constrain. Both transactions
// and shipping plans expose them.
var MatchFields = []FieldName{FieldCarrier, FieldPackageSize}

// IsMatchField reports whether f can be used inside a match filter
func (f FieldName) IsMatchField() bool {
	return lo.Contains(MatchFields, f)
}

func (f FieldName) String() string {
	return string(f)
}
