package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleFastNeutronFile = `[FastNeutron]

#######################
# Required Parameters #
#######################

# Number of events to generate.
Events = 10000

# File the generated primaries will be written to.
Output = path/to/output.dat

#######################
# Optional Parameters #
#######################

# Particle species emitted by the generator.
# Particle = neutron

# Name of the spectrum shape to sample. "fastneutron" selects the
# built-in Mei-Hime shape; other names must be registered through
# SpectrumFile.
# Spectrum = fastneutron

# Overburden in meters water equivalent.
# Depth = 400

# Minimum admitted neutron energy in MeV.
# EnThreshold = 10

# Seed for the uniform random stream. Runs with equal seeds produce
# identical event streams.
# Seed = 0

# Text table of (energy, relative flux) rows registered under the name
# given by Spectrum. Leave unset to use a built-in shape.
# SpectrumFile = path/to/flux.dat`
)

// FastNeutronConfig is the [FastNeutron] section of a run configuration
// file.
type FastNeutronConfig struct {
	// Required
	Events int
	Output string

	// Optional
	Particle     string
	Spectrum     string
	Depth        float64
	EnThreshold  float64
	Seed         int64
	SpectrumFile string
}

// FastNeutronWrapper is the gcfg target struct for run configuration
// files.
type FastNeutronWrapper struct {
	FastNeutron FastNeutronConfig
}

// DefaultFastNeutronWrapper returns a wrapper preloaded with the
// generator defaults.
func DefaultFastNeutronWrapper() *FastNeutronWrapper {
	con := FastNeutronConfig{}
	con.Particle = "neutron"
	con.Spectrum = "fastneutron"
	con.Depth = 400
	con.EnThreshold = 10
	return &FastNeutronWrapper{con}
}

// ReadFastNeutronConfig reads the [FastNeutron] section from the given
// file on top of the defaults.
func ReadFastNeutronConfig(file string) (*FastNeutronConfig, error) {
	wrap := DefaultFastNeutronWrapper()
	if err := gcfg.ReadFileInto(wrap, file); err != nil {
		return nil, err
	}
	con := &wrap.FastNeutron
	if err := con.checkInit(); err != nil {
		return nil, err
	}
	return con, nil
}

func (con *FastNeutronConfig) checkInit() error {
	if con.Events <= 0 {
		return fmt.Errorf("Need to specify a positive number of Events.")
	}
	if con.Output == "" {
		return fmt.Errorf("Need to specify an Output file.")
	}
	if con.Depth < 0 {
		return fmt.Errorf("Depth must be non-negative, but is %g.", con.Depth)
	}
	if con.EnThreshold < 0 {
		return fmt.Errorf(
			"EnThreshold must be non-negative, but is %g.", con.EnThreshold,
		)
	}
	return nil
}
