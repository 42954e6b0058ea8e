// ABOUTME: Escape grammar tables for CSI and SS3 navigation keys.
// ABOUTME: All documented variants (xterm, vt220, rxvt, linux console) are accepted as synonyms.

package key

// letterFinals maps the final byte of CSI and SS3 letter sequences
// (ESC [ A, ESC O H, ESC [ 1 ; 5 C, ...) to events.
var letterFinals = map[byte]Event{
	'A': Arrow(DirUp),
	'B': Arrow(DirDown),
	'C': Arrow(DirRight),
	'D': Arrow(DirLeft),
	'H': HomeEnd(DirHome),
	'F': HomeEnd(DirEnd),
}

// tildeCodes maps the numeric parameter of CSI <n> ~ sequences to events.
var tildeCodes = map[int]Event{
	1: HomeEnd(DirHome),
	7: HomeEnd(DirHome),
	4: HomeEnd(DirEnd),
	8: HomeEnd(DirEnd),
	3: Delete(),
	5: Page(DirUp),
	6: Page(DirDown),
}
