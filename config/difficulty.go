package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Level int

const (
	Beginner Level = iota
	Intermediate
	Expert
	Custom
)

// Levels in menu order.
var Levels = []Level{Beginner, Intermediate, Expert, Custom}

var levelNames = map[Level]string{
	Beginner:     "Beginner",
	Intermediate: "Intermediate",
	Expert:       "Expert",
	Custom:       "Custom",
}

func (level Level) String() string {
	if name, ok := levelNames[level]; ok {
		return name
	}
	return fmt.Sprint(int(level))
}

// IsPreset is false only for Custom.
func (level Level) IsPreset() bool {
	return level >= Beginner && level < Custom
}

func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if strings.EqualFold(levelName, name) {
			return level, nil
		}
	}
	return Beginner, errors.Errorf("unknown difficulty %q", name)
}

func (level Level) MarshalYAML() (interface{}, error) {
	return level.String(), nil
}

func (level *Level) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseLevel(name)
	if err != nil {
		return err
	}
	*level = parsed
	return nil
}

// Difficulty is a level together with its board parameters.
type Difficulty struct {
	Level                   Level
	Width, Height, NumMines int
}

var presets = map[Level]Difficulty{
	Beginner:     {Level: Beginner, Width: 9, Height: 9, NumMines: 10},
	Intermediate: {Level: Intermediate, Width: 16, Height: 16, NumMines: 40},
	Expert:       {Level: Expert, Width: 30, Height: 16, NumMines: 99},
}

// Preset returns the fixed parameters of a preset level; Custom falls back
// to Beginner.
func Preset(level Level) Difficulty {
	if d, ok := presets[level]; ok {
		return d
	}
	return presets[Beginner]
}

func CustomDifficulty(width, height, numMines int) Difficulty {
	return Difficulty{Level: Custom, Width: width, Height: height, NumMines: numMines}
}

// FromIndex maps a menu index to a difficulty, using the given custom
// parameters for index 3 and beyond.
func FromIndex(i, customW, customH, customN int) Difficulty {
	if i >= 0 && i < int(Custom) {
		return Preset(Level(i))
	}
	return CustomDifficulty(customW, customH, customN)
}

func (d Difficulty) Index() int {
	return int(d.Level)
}

func (d Difficulty) Name() string {
	return d.Level.String()
}

func (d Difficulty) Params() (width, height, numMines int) {
	return d.Width, d.Height, d.NumMines
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", d.Name(), d.Width, d.Height, d.NumMines)
}
