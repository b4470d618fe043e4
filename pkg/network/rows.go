package network

// EdgeRow is one line of the edge list handed to graph-drawing tools
type EdgeRow struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// NodeRow is one line of the node list handed to graph-drawing tools
type NodeRow struct {
	ID        string `json:"id"`
	Country   string `json:"country"`
	Continent string `json:"continent"`
	Order     string `json:"order"`
	Age       int    `json:"age"`
	Weight    int    `json:"weight"`
}

// EdgeRows returns the edge list keyed by cardinal name
func (g *Graph) EdgeRows() []EdgeRow {
	rows := make([]EdgeRow, len(g.edges))
	for i, e := range g.edges {
		rows[i] = EdgeRow{
			Source: g.nodes[e.Source].Cardinal.Name,
			Target: g.nodes[e.Target].Cardinal.Name,
			Weight: e.Weight,
		}
	}
	return rows
}

// NodeRows returns the node list with accumulated weights
func (g *Graph) NodeRows() []NodeRow {
	rows := make([]NodeRow, len(g.nodes))
	for i, n := range g.nodes {
		c := n.Cardinal
		rows[i] = NodeRow{
			ID:        c.Name,
			Country:   c.Country,
			Continent: c.Continent,
			Order:     c.Order,
			Age:       c.Age,
			Weight:    n.Weight,
		}
	}
	return rows
}
