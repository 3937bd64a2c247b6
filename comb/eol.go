package comb

const (
	eolUnix    = "\n"
	eolWindows = "\r\n"
)

// EOL matches a line feed or a carriage return followed by a line feed.
func EOL() Parser[string] {
	return Error(Choice(String(eolUnix), String(eolWindows)), "end of line")
}
