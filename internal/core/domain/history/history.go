/*
Package history defines core domain entities related to the debugger's
command history.
*/
package history

/*
CommandFrequency represents a debugger command line and how many times it
was entered in the scanned history window.
*/
type CommandFrequency struct {
	Command string
	Count   int
}
