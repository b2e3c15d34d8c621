// Package format adapts text to a publishing platform.
//
// ForPlatform leaves content that fits untouched. Content over the
// platform's hard limit is cut at the best boundary a little under the
// limit and gets the platform's continuation suffix:
//
//	format.ForPlatform(long, "twitter")  // "...natural break..."
//	format.ForPlatform(long, "linkedin") // "...natural break... (continued in comments)"
//
// Platforms with effectively unbounded limits (slack, newsletter) and
// unknown platforms pass content through.
//
// WrapLinks and WrapHashtags add HTML markup around bare URLs and #tags.
// Both skip text that is already inside a tag, so applying them twice gives
// the same result as applying them once.
package format
