/*
Package evaluation defines the values exchanged with the external evaluator
that executes expanded commands inside a debugger session.
*/
package evaluation

/*
Session identifies where an expanded command runs: the debugged target,
the process to attach to and the frame to select before evaluating.
Zero values mean "not specified".
*/
type Session struct {
	Target      string // Executable to create a target from.
	CoreFile    string // Core file loaded together with Target.
	PID         int    // Process ID to attach to.
	ProcessName string // Process name to attach to when PID is zero.
	Frame       int    // Frame index selected before evaluation.
}

// Result is the outcome of evaluating one command.
type Result struct {
	Command string
	Output  string
	Errors  string
}
