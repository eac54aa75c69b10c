package spacesearch

import (
	"fmt"
	"strings"
)

// Order selects the exploration order of a manager.
type Order int

const (
	// BreadthFirst explores states in first-in-first-out order.
	BreadthFirst Order = iota
	// DepthFirst explores states in last-in-first-out order.
	DepthFirst
	// Guided explores the lowest-scoring state first.
	Guided
	// AStar explores the state with the lowest accumulated cost plus score first.
	AStar
)

var orderNames = map[Order]string{
	BreadthFirst: "breadth_first",
	DepthFirst:   "depth_first",
	Guided:       "guided",
	AStar:        "a_star",
}

func (o Order) String() string {
	if s, ok := orderNames[o]; ok {
		return s
	}
	return fmt.Sprintf("order(%d)", int(o))
}

// Dedup selects whether already explored states are tracked.
type Dedup int

const (
	// Hashable keeps a visited set; each distinct state is expanded at most once.
	Hashable Dedup = iota
	// Unhashable keeps no visited set; cyclic spaces may never terminate.
	Unhashable
)

func (d Dedup) String() string {
	switch d {
	case Hashable:
		return "hashable"
	case Unhashable:
		return "unhashable"
	default:
		return fmt.Sprintf("dedup(%d)", int(d))
	}
}

// Shape selects what a searcher yields for each solution.
type Shape int

const (
	// NoRoute yields the solution state alone.
	NoRoute Shape = iota
	// Route yields every state from the initial state to the solution.
	Route
)

func (s Shape) String() string {
	switch s {
	case NoRoute:
		return "no_route"
	case Route:
		return "route"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Strategy describes a manager variant as one cell of the
// order × dedup × shape table. It is informational: managers report it,
// loggers and metrics label by it, and configuration files can name it.
type Strategy struct {
	Order Order
	Dedup Dedup
	Shape Shape
}

// String formats the strategy as "order/dedup/shape", e.g.
// "guided/hashable/route".
func (s Strategy) String() string {
	return s.Order.String() + "/" + s.Dedup.String() + "/" + s.Shape.String()
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStrategy parses the "order/dedup/shape" form produced by String.
// Fields may also be separated by commas or spaces, and may appear in any
// order. Omitted fields default to breadth_first, hashable and no_route.
func ParseStrategy(text string) (Strategy, error) {
	st := Strategy{Order: BreadthFirst, Dedup: Hashable, Shape: NoRoute}

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r == '/' || r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return Strategy{}, &StrategyError{Field: "strategy", Value: text}
	}

	seen := map[string]bool{}
	for _, f := range fields {
		f = strings.ReplaceAll(f, "-", "_")
		switch f {
		case "breadth_first", "bfs":
			st.Order = BreadthFirst
			f = "order"
		case "depth_first", "dfs":
			st.Order = DepthFirst
			f = "order"
		case "guided":
			st.Order = Guided
			f = "order"
		case "a_star", "astar":
			st.Order = AStar
			f = "order"
		case "hashable":
			st.Dedup = Hashable
			f = "dedup"
		case "unhashable":
			st.Dedup = Unhashable
			f = "dedup"
		case "route":
			st.Shape = Route
			f = "shape"
		case "no_route":
			st.Shape = NoRoute
			f = "shape"
		default:
			return Strategy{}, &StrategyError{Field: "strategy", Value: f}
		}
		if seen[f] {
			return Strategy{}, &StrategyError{Field: f, Value: text, cause: ErrDuplicateField}
		}
		seen[f] = true
	}
	return st, nil
}
