// Package flagx contains helpers for parsing a subset of the command line
// without interfering with flags owned by other packages.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns only the arguments that belong to the allowed flags,
// keeping their values. Both "-f value" and "--flag=value" forms are
// recognized.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			// the next argument is this flag's value unless it is a flag itself
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// PathFlag extracts a file path given via any of the named flags
// (e.g. "-c"/"-config"). Only those flags are parsed; everything else on the
// command line is ignored. Returns "" when none of them is present.
func PathFlag(names ...string) string {
	var path string

	prefixed := make([]string, 0, len(names))
	for _, n := range names {
		prefixed = append(prefixed, "-"+n)
	}
	args := FilterArgs(os.Args[1:], prefixed)

	fs := flag.NewFlagSet("flagx", flag.ContinueOnError)
	for _, n := range names {
		fs.StringVar(&path, n, path, "path")
	}
	_ = fs.Parse(args)

	return path
}

// JsonConfigFlags resolves the JSON config file path from -c or -config.
func JsonConfigFlags() string {
	return PathFlag("c", "config")
}

// EnvFileFlags resolves the env file path from -e or -env.
func EnvFileFlags() string {
	return PathFlag("e", "env")
}
