package collab

// Invoke calls c with exactly the arguments it declares: declared fields are
// copied from args, undeclared fields stay zero. Supplied-but-undeclared
// values are dropped silently and declared-but-unsupplied fields arrive as
// zero values; no defaulting happens here. Any error from the capability is
// returned unmodified.
func Invoke(c *Capability, args Args) (any, error) {
	var filtered Args
	for _, p := range c.Params {
		switch p {
		case ArgQuestion:
			filtered.Question = args.Question
		case ArgMessages:
			filtered.Messages = args.Messages
		case ArgConfig:
			filtered.Config = args.Config
		case ArgFiles:
			filtered.Files = args.Files
		}
	}
	return c.Call(filtered)
}
