package schedule

import "regexp"

// occurrenceSuffix matches identifiers of virtual occurrences, which end
// with a calendar date. Matching on the full date shape instead of
// splitting on the separator keeps stored ids that happen to contain a
// dash from being mistaken for virtual ones.
var occurrenceSuffix = regexp.MustCompile(`^(.+)-(\d{4}-\d{2}-\d{2})$`)

// OccurrenceID identifies either a stored booking or one synthesized
// occurrence of a recurring booking on a specific date.
type OccurrenceID struct {
	origin string
	date   string
}

// DirectID wraps the identifier of a stored booking.
func DirectID(id string) OccurrenceID {
	return OccurrenceID{origin: id}
}

// RecurringID identifies the occurrence of the stored booking origin on
// the given calendar date.
func RecurringID(origin, date string) OccurrenceID {
	return OccurrenceID{origin: origin, date: date}
}

// ParseOccurrenceID classifies a raw identifier. Identifiers carrying a
// trailing date are virtual occurrences; everything else is direct.
func ParseOccurrenceID(raw string) OccurrenceID {
	if match := occurrenceSuffix.FindStringSubmatch(raw); match != nil {
		return RecurringID(match[1], match[2])
	}

	return DirectID(raw)
}

// Origin returns the identifier of the underlying stored booking,
// regardless of which date's occurrence is being viewed.
func (o OccurrenceID) Origin() string {
	return o.origin
}

// IsVirtual reports whether the identifier names a synthesized
// occurrence rather than a stored booking.
func (o OccurrenceID) IsVirtual() bool {
	return o.date != ""
}

// Date returns the occurrence date of a virtual identifier, empty for
// direct ones.
func (o OccurrenceID) Date() string {
	return o.date
}

func (o OccurrenceID) String() string {
	if o.IsVirtual() {
		return o.origin + "-" + o.date
	}

	return o.origin
}
