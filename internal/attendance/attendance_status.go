package attendance

import "strings"

const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusAbsent  = "ABSENT"
)

// Entry cutoffs, compared lexically against zero-padded HH:MM.
const (
	presentCutoff = "08:20"
	lateCutoff    = "08:30"
)

// emptyTimeMarker is what the capture devices send when no punch was recorded.
const emptyTimeMarker = "--:--"

// NormalizeTime maps the empty markers to nil so the column stores NULL
// instead of a placeholder string.
func NormalizeTime(t *string) *string {
	if t == nil {
		return nil
	}
	v := strings.TrimSpace(*t)
	if v == "" || v == emptyTimeMarker {
		return nil
	}
	return &v
}

// DeriveStatus classifies an entry punch. No punch is an absence; so is
// showing up after the late cutoff.
func DeriveStatus(entry *string) string {
	entry = NormalizeTime(entry)
	if entry == nil {
		return StatusAbsent
	}

	hhmm := *entry
	if len(hhmm) > 5 {
		hhmm = hhmm[:5]
	}
	switch {
	case hhmm <= presentCutoff:
		return StatusPresent
	case hhmm <= lateCutoff:
		return StatusLate
	default:
		return StatusAbsent
	}
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPresent, StatusLate, StatusAbsent:
		return true
	}
	return false
}
