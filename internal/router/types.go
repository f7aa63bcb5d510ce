package router

// Route names the handler a conversation is dispatched to.
type Route string

const (
	RouteHealthcare Route = "healthcare"
	RouteKnowledge  Route = "knowledge"
)

// Routes lists every valid route.
var Routes = []Route{RouteHealthcare, RouteKnowledge}

func (r Route) String() string { return string(r) }

// Decision is the classification result with the reason it was taken.
type Decision struct {
	Route   Route
	Keyword string // matched keyword, empty unless Route is RouteKnowledge
	Reason  string
}
