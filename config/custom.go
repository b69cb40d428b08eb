package config

import "strconv"

// Bounds of a custom board.
const (
	MinWidth  = 9
	MaxWidth  = 36
	MinHeight = 9
	MaxHeight = 24
	MinMines  = 10

	maxMineDensity = 0.926
)

// CustomField identifies one input of the custom board form.
type CustomField int

const (
	FieldWidth CustomField = iota
	FieldHeight
	FieldMines
)

var fieldNames = []string{"width", "height", "mines"}

func (field CustomField) String() string {
	return fieldNames[field]
}

// MaxDigits is the input length limit for the field.
func (field CustomField) MaxDigits() int {
	if field == FieldMines {
		return 3
	}
	return 2
}

// MaxMines is the densest allowed custom board.
func MaxMines(width, height int) int {
	return int(float64(width*height) * maxMineDensity)
}

// FieldError reports the first custom form field that failed validation.
type FieldError struct {
	Field  CustomField
	Reason string
}

func (err *FieldError) Error() string {
	return err.Field.String() + ": " + err.Reason
}

// ValidateCustom checks width, then height, then mines.
func ValidateCustom(width, height, numMines int) error {
	if width < MinWidth || width > MaxWidth {
		return &FieldError{Field: FieldWidth, Reason: "must be between 9 and 36"}
	}
	if height < MinHeight || height > MaxHeight {
		return &FieldError{Field: FieldHeight, Reason: "must be between 9 and 24"}
	}
	if maxMines := MaxMines(width, height); numMines < MinMines || numMines > maxMines {
		return &FieldError{Field: FieldMines, Reason: "must be between 10 and " + strconv.Itoa(maxMines)}
	}
	return nil
}

// ParseCustom validates the three text inputs of the custom board form. The
// first empty field is reported before any range check.
func ParseCustom(fields [3]string) (Difficulty, error) {
	for i, text := range fields {
		if text == "" {
			return Difficulty{}, &FieldError{Field: CustomField(i), Reason: "required"}
		}
	}

	var values [3]int
	for i, text := range fields {
		value, err := strconv.Atoi(text)
		if err != nil {
			return Difficulty{}, &FieldError{Field: CustomField(i), Reason: "not a number"}
		}
		values[i] = value
	}

	if err := ValidateCustom(values[0], values[1], values[2]); err != nil {
		return Difficulty{}, err
	}
	return CustomDifficulty(values[0], values[1], values[2]), nil
}
