// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gridmdp/agent"
	"github.com/samuelfneumann/gridmdp/environment/envconfig"
	"github.com/samuelfneumann/gridmdp/experiment/trackers"
	ts "github.com/samuelfneumann/gridmdp/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments send each environment TimeStep to Trackers, which cache
// the data they need in RAM. The Save() function then writes all
// cached data to disk, usually after the experiment has been run. The
// Run() method runs episodes until the step budget is exhausted, and
// RunEpisode() runs a single episode.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error) // Returns whether the step budget is spent

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data to disk
	Save() error

	// Adds a new Tracker to the (possibly already running) experiment.
	Register(t trackers.Tracker)
}

type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment.
type Config struct {
	Type
	MaxSteps uint
	EnvConf  envconfig.Config
}

// CreateExp creates the experiment described by c, running a on the
// environment described by c.EnvConf
func (c Config) CreateExp(seed uint64, a agent.Agent,
	t ...trackers.Tracker) (Experiment, error) {
	env, _, err := c.EnvConf.Create(seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: %w",
			err)
	}

	switch c.Type {
	case OnlineExp:
		return NewOnline(env, a, c.MaxSteps, t...), nil
	}

	return nil, fmt.Errorf("createExp: no such experiment type %v", c.Type)
}
