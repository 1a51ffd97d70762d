package ports

/*
InitFileAccessor defines the interface for reading from and writing to the
debugger's init file (~/.lldbinit). This is a driven port, implemented by a
repository adapter that understands the init-file directive syntax.
*/
type InitFileAccessor interface {
	/*
	   GetExistingShortcuts retrieves the names defined by "command alias" and
	   "command regex" directives in the init file and the generated
	   shortcut file. Values are the alias expansion or the regex substitution.
	*/
	GetExistingShortcuts() (map[string]string, error)

	// WriteShortcutFile replaces the generated shortcut file with content and
	// returns its path.
	WriteShortcutFile(content string) (string, error)

	/*
	   EnsureSourced appends a "command source" line for path to the init file.
	   It returns true if the line was added, false if it was already present.
	*/
	EnsureSourced(path string) (bool, error)

	// GetInitFilePath returns the path of the init file.
	GetInitFilePath() string
}
