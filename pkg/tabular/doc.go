// Package tabular reads cardinal records from CSV and writes the graph,
// partition and statistics tables as CSV or XLSX streams.
//
// Column layouts follow the files used by graph-drawing tools: edges as
// Source,Target,Weight and nodes as Id,Country,Continent,Order,Age,Weight.
package tabular
