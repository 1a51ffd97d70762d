package rule

import "errors"

// Sentinel errors for rule registration and dispatch. Callers wrap them with
// context and test with errors.Is.
//
// Registration errors (fatal to a load):
// - ErrInvalidDefinition: a rule has an empty or malformed name, kind or body
// - ErrDuplicateName: a rule name is already registered
// - ErrInvalidPattern: a regex rule pattern does not compile
// - ErrInvalidTemplate: a template references a capture group the pattern lacks
// - ErrSealed: registration attempted after the registry was loaded
//
// Dispatch errors (recoverable per call):
// - ErrNotFound: no alias or regex rule matches the typed line
// - ErrMissingArgument: a regex trigger was typed without its argument
// - ErrPlaceholderSubstitution: a matched capture group cannot satisfy the template
// - ErrNotLoaded: dispatch attempted before the registry was loaded
var (
	ErrInvalidDefinition       = errors.New("invalid rule definition")
	ErrDuplicateName           = errors.New("duplicate rule name")
	ErrInvalidPattern          = errors.New("invalid pattern")
	ErrInvalidTemplate         = errors.New("invalid template")
	ErrSealed                  = errors.New("registry is sealed")
	ErrNotFound                = errors.New("no matching rule")
	ErrMissingArgument         = errors.New("missing argument")
	ErrPlaceholderSubstitution = errors.New("placeholder substitution failed")
	ErrNotLoaded               = errors.New("registry not loaded")
)
