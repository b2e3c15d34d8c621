// Package kinds registers all content kinds.
// Import this package to make every kind available via content.Process():
//
//	import _ "github.com/randalmurphal/contentkit/kinds"
package kinds

import (
	_ "github.com/randalmurphal/contentkit/imageprompt"
	_ "github.com/randalmurphal/contentkit/newsletter"
	_ "github.com/randalmurphal/contentkit/poll"
	_ "github.com/randalmurphal/contentkit/thread"
)
