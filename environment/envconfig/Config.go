// Package envconfig provides configuration structs for configuring
// grid world environments. Environment configurations in this package
// are JSON serializable.
package envconfig

import (
	"encoding/json"
	"fmt"
	"os"

	env "github.com/samuelfneumann/gridmdp/environment"
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	ts "github.com/samuelfneumann/gridmdp/timestep"
)

// LayoutName stores the name of the layouts that can be configured with
// this package
type LayoutName string

// Layouts available for configuration. The generator parameters each
// layout reads are as follows:
//
//	Layout		Parameters
//	Demo		none
//	TwoRooms	RoomWidth, RoomHeight, DoorwayPos, DoorwayHeight, GoalRow
//	FourRooms	RoomWidth, RoomHeight, DoorwayPosV, DoorwayPosH,
//			DoorwayHeight, GoalCol, GoalRow
//	Literal		Cells
const (
	Demo      LayoutName = "Demo"
	TwoRooms  LayoutName = "TwoRooms"
	FourRooms LayoutName = "FourRooms"
	Literal   LayoutName = "Literal"
)

// Config implements a specific configuration of a grid world. A zero
// EpisodeCutoff means episodes only end in terminal states.
type Config struct {
	Layout LayoutName

	RoomWidth     int `json:",omitempty"`
	RoomHeight    int `json:",omitempty"`
	DoorwayPos    int `json:",omitempty"`
	DoorwayPosV   int `json:",omitempty"`
	DoorwayPosH   int `json:",omitempty"`
	DoorwayHeight int `json:",omitempty"`
	GoalRow       int `json:",omitempty"`
	GoalCol       int `json:",omitempty"`

	Cells [][]string `json:",omitempty"`

	SuccessProbability float64
	Discount           float64
	EpisodeCutoff      uint
}

// Default returns the configuration of the demo grid world with the
// default slip and discount
func Default() Config {
	return Config{
		Layout:             Demo,
		SuccessProbability: gridworld.DefaultSuccessProbability,
		Discount:           gridworld.DefaultDiscount,
		EpisodeCutoff:      100,
	}
}

// BuildLayout returns the grid layout described by the Config
func (c Config) BuildLayout() (gridworld.Layout, error) {
	switch c.Layout {
	case Demo:
		return gridworld.DemoLayout(), nil

	case TwoRooms:
		return gridworld.TwoRooms(c.RoomWidth, c.RoomHeight, c.DoorwayPos,
			c.DoorwayHeight, c.GoalRow)

	case FourRooms:
		return gridworld.FourRooms(c.RoomWidth, c.RoomHeight, c.DoorwayPosV,
			c.DoorwayPosH, c.DoorwayHeight, c.GoalCol, c.GoalRow)

	case Literal:
		return gridworld.ParseLayout(c.Cells)
	}

	return nil, fmt.Errorf("buildLayout: %w: no such layout %q",
		gridworld.ErrConfiguration, c.Layout)
}

// CreateGridWorld returns the GridWorld described by the Config, seeded
// with seed
func (c Config) CreateGridWorld(seed uint64,
	opts ...gridworld.Option) (*gridworld.GridWorld, error) {
	layout, err := c.BuildLayout()
	if err != nil {
		return nil, fmt.Errorf("createGridWorld: %w", err)
	}

	opts = append([]gridworld.Option{
		gridworld.WithDiscount(c.Discount),
		gridworld.WithSuccessProbability(c.SuccessProbability),
		gridworld.WithSeed(seed),
	}, opts...)

	gw, err := gridworld.New(gridworld.NewGrid(layout), opts...)
	if err != nil {
		return nil, fmt.Errorf("createGridWorld: %w", err)
	}
	return gw, nil
}

// Create returns the episodic environment described by the Config as
// well as the first timestep of the environment.
func (c Config) Create(seed uint64,
	opts ...gridworld.Option) (*gridworld.Episodic, ts.TimeStep, error) {
	gw, err := c.CreateGridWorld(seed, opts...)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	var ender env.Ender
	if c.EpisodeCutoff > 0 {
		ender = env.NewStepLimit(int(c.EpisodeCutoff))
	}

	e, step, err := gridworld.NewEpisodic(gw, ender)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}
	return e, step, nil
}

// Load reads a JSON Config from path. Fields missing from the file keep
// their values from Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load: %w", err)
	}

	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not decode %v: %w", path,
			err)
	}
	return c, nil
}

// Save writes the Config to path as indented JSON
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
