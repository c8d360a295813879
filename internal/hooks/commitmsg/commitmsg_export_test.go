package commitmsg

// Test helpers - exported for testing only

// ParseArgsForTesting exposes parseArgs for testing.
func ParseArgsForTesting(args []string) (strict bool, verbose bool, color bool, emojis []string, input string, err error) {
	opts, err := parseArgs(args)
	if err != nil {
		return false, false, false, nil, "", err
	}

	return opts.strict, opts.verbose, opts.color, opts.emojis, opts.input, nil
}
