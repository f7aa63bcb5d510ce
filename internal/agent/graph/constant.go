package graph

// GraphName identifies the runner in logs and health output.
const GraphName = "Healthcare JARVIS Agent"

// Log prefixes
const (
	LogPrefixInvoke = "internal.agent.graph.Invoke"
)

// Node names
const (
	NodeStart = "START"
	NodeEnd   = "END"
)
