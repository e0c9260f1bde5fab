package rangestore

import "fmt"

// The availability API names days in uppercase while the editor uses Go's
// time.Weekday spelling. Both directions go through these tables so a
// vocabulary mismatch fails loudly instead of silently dropping a day.
var wireDays = map[string]string{
	"Monday":    "MONDAY",
	"Tuesday":   "TUESDAY",
	"Wednesday": "WEDNESDAY",
	"Thursday":  "THURSDAY",
	"Friday":    "FRIDAY",
	"Saturday":  "SATURDAY",
	"Sunday":    "SUNDAY",
}

var editorDays = func() map[string]string {
	m := make(map[string]string, len(wireDays))
	for editor, wire := range wireDays {
		m[wire] = editor
	}
	return m
}()

// ToWireDay translates an editor day name to the store's vocabulary.
func ToWireDay(day string) (string, error) {
	wire, ok := wireDays[day]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	return wire, nil
}

// FromWireDay translates a store day name to the editor's vocabulary.
func FromWireDay(day string) (string, error) {
	editor, ok := editorDays[day]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	return editor, nil
}
