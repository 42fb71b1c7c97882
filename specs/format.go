package specs

// FormatSpec represents a textual date-time layout.
//
// Layouts are strings of %-directives and literal separators:
//
//	%Y year         %m month        %d day          %H hour
//	%M minute       %S second       %f nanoseconds  %T time scale
//	%t GNSS code    %j day of year  %J day of year with fraction
//	%A weekday      %a short weekday %B month name  %b short month name
//	%w C89 weekday  %z offset
//
// A '?' after a directive makes the item optional when parsing.
//
// Examples:
//   - "%Y-%m-%dT%H:%M:%S.%f %T" (ISO 8601 with scale)
//   - "%a, %d %b %Y %H:%M:%S" (RFC 2822)
type FormatSpec struct {
	// Layout of %-directives. Examples: "%Y-%m-%d", "%Y-%j".
	Layout string `json:"layout"`

	// Fixed offset applied for display, as a DurationSpec value.
	// Example: "+05:30". Empty shows the clock itself.
	Timezone string `json:"timezone,omitempty"`

	// Clock to render when the layout names a scale with %T or %t. Empty
	// renders the epoch's own display scale. Other layouts read UTC.
	TimeScale string `json:"time_scale,omitempty"`
}

// Format renders an instant with a layout.
//
// Returns error if the epoch or layout cannot be read.
//
// This is the spec-level interface using only primitive types.
// See efmt.FormatSpec for the reference implementation.
type Format func(epoch EpochSpec, format FormatSpec) (string, error)
