package command

// AnalyzedCommand holds the results of analyzing a debugger command line.
type AnalyzedCommand struct {
	Original    string
	CommandName string   // First token, e.g. "expression" or "memory"
	Options     []string // Tokens after the name and before "--" (or all of them when there is no "--")
	Terminated  bool     // Whether the line contains the "--" option terminator
	Expression  string   // Raw text after "--", not tokenized
	Prefix      string   // Normalized "name options --" when Terminated, otherwise the whole normalized line
	IsComplex   bool     // Quoting or escapes before the terminator make the prefix unsafe to reuse verbatim
}
