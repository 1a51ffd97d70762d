package ports

// HistoryFileFinder locates LLDB's command history file.
type HistoryFileFinder interface {
	// Find returns the path of the first history file that exists.
	Find() (string, error)
}
