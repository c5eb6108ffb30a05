package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gridmdp/agent"
	env "github.com/samuelfneumann/gridmdp/environment"
	"github.com/samuelfneumann/gridmdp/experiment/trackers"
	ts "github.com/samuelfneumann/gridmdp/timestep"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
type Online struct {
	env.Environment
	agent.Agent
	maxSteps     uint
	currentSteps uint
	trackers     []trackers.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The steps parameter determines how
// many timesteps the experiment is run for, and the t parameter
// is a slice of trackers.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, steps uint,
	t ...trackers.Tracker) *Online {
	return &Online{e, a, steps, 0, t}
}

// Register registers a trackers.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// Steps returns the number of timesteps taken so far
func (o *Online) Steps() uint {
	return o.currentSteps
}

// RunEpisode runs a single episode of the experiment
func (o *Online) RunEpisode() (bool, error) {
	if o.currentSteps >= o.maxSteps {
		return true, nil
	}

	step, err := o.Environment.Reset()
	if err != nil {
		return true, fmt.Errorf("runEpisode: %w", err)
	}
	if err := o.Agent.ObserveFirst(step); err != nil {
		return true, fmt.Errorf("runEpisode: %w", err)
	}
	o.track(step)

	// Run the next timestep
	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		// Select action, step in environment
		legal := o.Environment.LegalActions()
		action, err := o.Agent.SelectAction(step, legal)
		if err != nil {
			return true, fmt.Errorf("runEpisode: %w", err)
		}
		step, _, err = o.Environment.Step(action)
		if err != nil {
			return true, fmt.Errorf("runEpisode: %w", err)
		}

		// Cache the environment step in each Tracker
		o.track(step)

		// Observe the timestep and step the agent
		if err := o.Agent.Observe(action, step); err != nil {
			return true, fmt.Errorf("runEpisode: %w", err)
		}
		if err := o.Agent.Step(); err != nil {
			return true, fmt.Errorf("runEpisode: %w", err)
		}
	}

	if step.Last() {
		o.Agent.EndEpisode()
	}

	// Return whether or not the max timestep limit has been reached
	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() error {
	for {
		ended, err := o.RunEpisode()
		if err != nil {
			return err
		}
		if ended {
			return nil
		}
	}
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return err
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
