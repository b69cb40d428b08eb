// Package config holds the persisted preferences and best times.
package config

import "time"

const recordDateFormat = "2006-01-02"

// Record is a best completion time.
type Record struct {
	Secs uint64 `yaml:"secs"`
	Date string `yaml:"date"`
}

type Config struct {
	Difficulty Level `yaml:"difficulty"`

	BestBeginner     *Record `yaml:"best_beginner,omitempty"`
	BestIntermediate *Record `yaml:"best_intermediate,omitempty"`
	BestExpert       *Record `yaml:"best_expert,omitempty"`

	CustomW int `yaml:"custom_w"`
	CustomH int `yaml:"custom_h"`
	CustomN int `yaml:"custom_n"`

	UseQuestionMarks bool `yaml:"use_question_marks"`
	ShowIndicator    bool `yaml:"show_indicator"`
	ASCIIIcons       bool `yaml:"ascii_icons"`
}

func Default() *Config {
	return &Config{
		Difficulty: Beginner,
		CustomW:    36,
		CustomH:    20,
		CustomN:    150,
	}
}

// Current is the selected difficulty, with the stored custom parameters for
// Custom.
func (c *Config) Current() Difficulty {
	return FromIndex(int(c.Difficulty), c.CustomW, c.CustomH, c.CustomN)
}

func (c *Config) SetDifficulty(d Difficulty) {
	c.Difficulty = d.Level
	if d.Level == Custom {
		c.CustomW, c.CustomH, c.CustomN = d.Params()
	}
}

func (c *Config) record(level Level) **Record {
	switch level {
	case Beginner:
		return &c.BestBeginner
	case Intermediate:
		return &c.BestIntermediate
	case Expert:
		return &c.BestExpert
	}
	return nil
}

// GetRecord returns the best time in seconds; never set for Custom.
func (c *Config) GetRecord(level Level) (uint64, bool) {
	record, ok := c.GetRecordDetail(level)
	return record.Secs, ok
}

func (c *Config) GetRecordDetail(level Level) (Record, bool) {
	slot := c.record(level)
	if slot == nil || *slot == nil {
		return Record{}, false
	}
	return **slot, true
}

// SetRecord stores secs as the best time for a preset level when it beats
// the current one, and reports whether it did.
func (c *Config) SetRecord(level Level, secs uint64, now time.Time) bool {
	slot := c.record(level)
	if slot == nil {
		return false
	}
	if *slot != nil && secs >= (*slot).Secs {
		return false
	}
	*slot = &Record{Secs: secs, Date: now.Format(recordDateFormat)}
	return true
}

// sanitize repairs values a hand-edited file may have broken.
func (c *Config) sanitize() {
	if c.Difficulty < Beginner || c.Difficulty > Custom {
		c.Difficulty = Beginner
	}
	if ValidateCustom(c.CustomW, c.CustomH, c.CustomN) != nil {
		defaults := Default()
		c.CustomW, c.CustomH, c.CustomN = defaults.CustomW, defaults.CustomH, defaults.CustomN
	}
}
