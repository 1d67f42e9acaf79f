package detector

import "regexp"

// InputFormat describes the line shape of one puzzle's input.
type InputFormat struct {
	Name       string            // Human-readable name
	Day        int               // Puzzle the format belongs to
	Pattern    *regexp.Regexp    // Compiled regex (set during init)
	PatternStr string            // Pattern string for display
	Examples   []string          // Example lines
	Check      func(string) bool // Extra per-line check, optional
}

// Matches reports whether a non-blank line has this format.
func (f *InputFormat) Matches(line string) bool {
	if !f.Pattern.MatchString(line) {
		return false
	}
	return f.Check == nil || f.Check(line)
}

// DefaultFormats returns the built-in input formats to detect.
// Formats are ordered by specificity (more specific patterns first).
func DefaultFormats() []*InputFormat {
	formats := []*InputFormat{
		{
			Name:       "Strategy guide",
			Day:        2,
			PatternStr: `^[ABC] [XYZ]$`,
			Examples:   []string{"A Y", "B X", "C Z"},
		},
		{
			Name:       "Calorie inventory",
			Day:        1,
			PatternStr: `^\d+$`,
			Examples:   []string{"1000", "2000", "", "4000"},
		},
		{
			Name:       "Rucksack contents",
			Day:        3,
			PatternStr: `^[a-zA-Z]+$`,
			Examples:   []string{"vJrwpWtwJgWrhcsFMMfFFhFp"},
			Check:      func(line string) bool { return len(line)%2 == 0 },
		},
	}

	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}
