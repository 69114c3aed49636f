package domain

// Entity is a generic named record: surveyors, agents and other lookup
// values that do not warrant a table of their own. Name is unique and is
// the upsert key.
type Entity struct {
	ID       int64
	Name     string
	Category string
	Notes    string
}
