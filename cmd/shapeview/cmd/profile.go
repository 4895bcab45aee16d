package cmd

import (
	"fmt"

	"github.com/pkg/profile"
)

// startProfile begins the named profile and returns its stop func. An empty
// kind or "none" profiles nothing.
func startProfile(kind, dir string) (stop func(), err error) {
	var mode func(*profile.Profile)
	switch kind {
	case "", "none":
		return func() {}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "trace":
		mode = profile.TraceProfile
	default:
		return nil, fmt.Errorf("unknown profile %q (want cpu, mem or trace)", kind)
	}
	opts := []func(*profile.Profile){mode, profile.NoShutdownHook, profile.Quiet}
	if dir != "" {
		opts = append(opts, profile.ProfilePath(dir))
	}
	return profile.Start(opts...).Stop, nil
}
