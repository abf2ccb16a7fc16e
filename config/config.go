package config

type (
	HeadersNumber struct {
		Default, Maximal int
	}

	HeadersSpace struct {
		Default, Maximal int
	}
)

type (
	Headers struct {
		// Number is responsible for the headers storage size.
		// Default value is an initial number of preallocated seats.
		// Maximal value is maximum number of headers allowed to be presented. Continuation
		// lines don't count.
		Number HeadersNumber
		// Space limits the amount of memory occupied by joined continuation values. Values
		// of regular headers are never copied, so they don't take any space.
		Space HeadersSpace
		// MergeRepeated makes repeated headers look like a single one, having all the
		// values joined by a comma.
		MergeRepeated bool `test:"nullable"`
	}

	Params struct {
		// Prealloc is the number of preallocated seats for message.Message.Params.
		Prealloc int
		// Maximal is the maximum number of query parameters allowed.
		Maximal int
	}
)

// Config holds limits and pre-allocations used by the message package. The parsers on
// their own enforce no limits.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers Headers
	Params  Params
}

// Default returns default config. Those are initially well-balanced, however maximal defaults
// are pretty permitting.
func Default() *Config {
	return &Config{
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
				Maximal: 50,
			},
			Space: HeadersSpace{
				Default: 512,
				// folded headers are deprecated, so hitting this limit rather signals
				// something went wrong.
				Maximal: 16 * 1024,
			},
		},
		Params: Params{
			Prealloc: 5,
			Maximal:  100,
		},
	}
}
