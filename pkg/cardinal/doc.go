// Package cardinal holds the entity store of the conclave network: typed,
// validated cardinal records addressable by their unique name.
//
// Records arrive from an external tabular source. A record missing a
// required attribute (country, continent, order or age) is rejected with an
// *EntityError naming the row and cardinal, unless a DefaultPolicy supplies
// the missing value. Continents may instead be filled by a ContinentResolver;
// the store never geocodes by itself.
package cardinal
