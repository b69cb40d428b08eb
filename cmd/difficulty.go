package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/they4kman/tsweep/config"
)

type difficultyValue config.Level

func newDifficultyValue(val config.Level, p *config.Level) *difficultyValue {
	*p = val
	return (*difficultyValue)(p)
}

var _ pflag.Value = (*difficultyValue)(nil)

func (val *difficultyValue) String() string {
	return strings.ToLower(config.Level(*val).String())
}

func (val *difficultyValue) Set(value string) error {
	level, err := config.ParseLevel(value)
	if err != nil {
		return err
	}
	*val = difficultyValue(level)
	return nil
}

func (val *difficultyValue) Type() string {
	return "difficulty"
}

// applyOverrides changes cfg to the difficulty selected on the command line
// and reports whether anything changed. Any of the size flags selects a
// custom board, with unset ones taken from the stored custom values.
func applyOverrides(cfg *config.Config, fs *pflag.FlagSet, f runFlags) (bool, error) {
	custom := fs.Changed("width") || fs.Changed("height") || fs.Changed("mines")
	picked := fs.Changed("difficulty")

	if picked && custom && f.difficulty != config.Custom {
		return false, errors.Errorf("--width, --height and --mines need --difficulty custom, not %s",
			strings.ToLower(f.difficulty.String()))
	}

	if custom || (picked && f.difficulty == config.Custom) {
		width, height, numMines := cfg.CustomW, cfg.CustomH, cfg.CustomN
		if fs.Changed("width") {
			width = f.width
		}
		if fs.Changed("height") {
			height = f.height
		}
		if fs.Changed("mines") {
			numMines = f.mines
		}
		if err := config.ValidateCustom(width, height, numMines); err != nil {
			return false, errors.Wrap(err, "invalid custom board")
		}
		cfg.SetDifficulty(config.CustomDifficulty(width, height, numMines))
		return true, nil
	}

	if picked {
		cfg.SetDifficulty(config.Preset(f.difficulty))
		return true, nil
	}
	return false, nil
}
