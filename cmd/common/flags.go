package common

// FlagSource returns the global flag values at execution time. Subcommands
// receive it instead of reading root-command state directly, so they stay
// constructible in tests.
type FlagSource func() (cfgFile string, debug bool)

// Deps resolves the global flags into wired command dependencies.
func (f FlagSource) Deps() (CommandDeps, error) {
	cfgFile, debug := f()

	return NewCommandDeps(cfgFile, debug)
}
