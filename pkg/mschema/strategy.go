package mschema

// Strategy selects which rendered schema the SQL generators receive.
type Strategy string

const (
	WithSchemaLink    Strategy = "WITH_SCHEMA_LINK"
	WithoutSchemaLink Strategy = "WITHOUT_SCHEMA_LINK"
)

// largeSchemaTables is the table count above which the full schema is
// considered too large to prompt with when a reduced projection exists.
const largeSchemaTables = 20

// ChooseStrategy picks the schema variant deterministically. The reduced
// projection wins when it is non-empty and either the keyword set is rich
// enough to trust the projection or the full schema is too large to prompt
// with wholesale.
func ChooseStrategy(reduced *Schema, full *Schema, keywordCount int) Strategy {
	if reduced.IsEmpty() {
		return WithoutSchemaLink
	}
	if keywordCount >= 3 || full.TableCount() > largeSchemaTables {
		return WithSchemaLink
	}
	return WithoutSchemaLink
}
