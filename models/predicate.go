package models

// Predicate is a backend-agnostic filter: a conjunction of terms, where each
// term is a disjunction of field-clause conjunctions. The Mongo adapter in
// the repository package translates it to bson; nothing in the core ever
// builds a raw query string.
type Predicate struct {
	Terms []Term `json:"terms"`
}

// Term is one AND-ed constraint. Most terms hold a single Match with a
// single Clause; hierarchical facet filters and price filters use multiple
// branches.
type Term struct {
	Any []Match `json:"any"`
}

// Match is one OR-branch of a term: every clause in it must hold.
type Match struct {
	Clauses []Clause `json:"clauses"`
}

// Clause constrains one document field. When Coalesce is set the clause
// applies to the first present value among Field and Coalesce in order,
// which is how the derived selling price (finalPrice falling back to price)
// is queried without materializing it.
type Clause struct {
	Field    string      `json:"field"`
	Coalesce []string    `json:"coalesce,omitempty"`
	Op       Op          `json:"op"`
	Value    interface{} `json:"value"`
}

// Op enumerates the comparison operators the backends must support.
type Op string

const (
	// OpEq matches the value exactly as stored.
	OpEq Op = "eq"
	// OpEqFold matches the whole string value, case-insensitively.
	OpEqFold Op = "eq_fold"
	// OpContainsFold matches a case-insensitive substring.
	OpContainsFold Op = "contains_fold"
	OpGte          Op = "gte"
	OpGt           Op = "gt"
	OpLte          Op = "lte"
)

// And appends a single-clause term.
func (p *Predicate) And(field string, op Op, value interface{}) {
	p.Terms = append(p.Terms, Term{Any: []Match{{Clauses: []Clause{{Field: field, Op: op, Value: value}}}}})
}

// AndAny appends a term matching any of the given branches.
func (p *Predicate) AndAny(branches ...Match) {
	p.Terms = append(p.Terms, Term{Any: branches})
}

// IsEmpty reports whether the predicate constrains anything at all.
func (p Predicate) IsEmpty() bool { return len(p.Terms) == 0 }
