package motion

import (
	"os"
	"strconv"
	"strings"
)

// EnvReducedMotion names the environment variable read by EnvPreference.
const EnvReducedMotion = "AION_REDUCED_MOTION"

// PreferenceSource answers whether the platform asks for reduced motion.
// It is read once per resolution.
type PreferenceSource interface {
	PrefersReducedMotion() bool
}

type StaticPreference bool

func (p StaticPreference) PrefersReducedMotion() bool {
	return bool(p)
}

type PreferenceFunc func() bool

func (f PreferenceFunc) PrefersReducedMotion() bool {
	if f == nil {
		return false
	}
	return f()
}

// EnvPreference reads AION_REDUCED_MOTION on every call. Unset or unparsable
// values mean no preference.
type EnvPreference struct{}

func (EnvPreference) PrefersReducedMotion() bool {
	v, ok := os.LookupEnv(EnvReducedMotion)
	if !ok {
		return false
	}
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "reduce") {
		return true
	}
	reduce, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return reduce
}

// AnyPreference reports reduced motion when any of its sources does.
type AnyPreference []PreferenceSource

func (a AnyPreference) PrefersReducedMotion() bool {
	for _, source := range a {
		if source != nil && source.PrefersReducedMotion() {
			return true
		}
	}
	return false
}
