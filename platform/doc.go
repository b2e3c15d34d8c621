// Package platform holds the character limits of publishing surfaces.
//
// Every destination surface has a hard character limit and a softer
// recommended limit. The built-in table covers:
//
//	twitter (x)   280 / 250
//	linkedin     3000 / 1300
//	instagram    2200 / 1500
//	slack       40000 / 4000
//	short         280 / 200
//	thread        280 / 250
//	post         3000 / 1500
//	newsletter 100000 / 50000
//
// # Lookup
//
// Identifiers are case-insensitive and a few aliases are accepted ("x",
// "tweet", "ig", ...). Unknown identifiers never fail: they resolve to the
// twitter limits with a logged warning.
//
//	limits := platform.Lookup("LinkedIn")
//	limits.CharacterLimit   // 3000
//	limits.RecommendedLimit // 1300
//
// # Tables
//
// A Table is immutable once built. Use NewTable to layer overrides from
// configuration on top of the built-in limits:
//
//	table, err := platform.NewTable(map[string]platform.Limits{
//	    "mastodon": {CharacterLimit: 500, RecommendedLimit: 400},
//	})
//
// # Counting
//
// Lengths are counted in runes, not bytes, so multi-byte characters count
// once:
//
//	platform.Count("héllo") // 5
package platform
