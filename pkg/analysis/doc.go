// Package analysis turns a similarity graph and its community partition into
// descriptive statistics: per-community tables, population-wide metrics and
// demographic breakdowns.
//
// Ratios with a zero denominator and metrics that need at least one node are
// reported as NaN; use IsUndefined to test for them.
package analysis
