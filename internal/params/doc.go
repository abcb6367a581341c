// Package params parses the key=value pairs given on the command line.
//
// bytecrawl play accepts repeated --stat flags to set the player's
// starting stats:
//
//	bytecrawl play --stat bytes=500 --stat health=40
//
// Keys are case-insensitive and surrounding whitespace is ignored; the
// player package decides which keys and values are valid.
package params
