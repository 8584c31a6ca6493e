// Package directives parses the two mini-grammars embedded in drift's
// script configuration: the "scriptType:extlist" directive keys and the
// "mount <dir> [--to <url>]" command strings.
package directives
