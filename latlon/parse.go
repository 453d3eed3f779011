package latlon

import (
	"regexp"
	"strconv"
	"strings"
)

// Format is the coordinate text layout detected by ParseFormat.
type Format int

const (
	// Plain is a bare comma separated list: lat, lon, lat, lon...
	Plain Format = iota
	// Annotated carries degree signs and hemisphere letters: 51.5074° N, 0.1278° W
	Annotated
)

func (f Format) String() string {
	if f == Annotated {
		return "annotated"
	}
	return "plain"
}

var (
	annotatedPattern = regexp.MustCompile(`(?i)(-?\d+\.?\d*)\s*°?\s*([NS])?,\s*(-?\d+\.?\d*)\s*°?\s*([EW])?`)
	numberPattern    = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// Parse reads a list of coordinates, see ParseFormat.
func Parse(text string) ([]LatLon, error) {
	coords, _, err := ParseFormat(text)
	return coords, err
}

// ParseFormat reads a list of coordinates and reports which layout was used.
//
// When the annotated pattern matches anywhere in the text, only its matches
// are used and the rest of the text is ignored. Otherwise the text is read as
// a plain comma separated list of numbers taken two by two.
// The first invalid value aborts the parsing, no partial list is returned.
func ParseFormat(text string) ([]LatLon, Format, error) {
	clean := strings.Join(strings.Fields(text), " ")

	matches := annotatedPattern.FindAllStringSubmatch(clean, -1)
	if len(matches) > 0 {
		coords, err := parseAnnotated(matches)
		return coords, Annotated, err
	}

	coords, err := parsePlain(clean)
	return coords, Plain, err
}

func parseAnnotated(matches [][]string) ([]LatLon, error) {
	coords := make([]LatLon, 0, len(matches))
	for i, m := range matches {
		lat, err := parseNumber(m[1])
		if err != nil {
			return nil, &ParseError{Kind: InvalidNumber, Format: Annotated, Position: i + 1, Token: m[1]}
		}
		lon, err := parseNumber(m[3])
		if err != nil {
			return nil, &ParseError{Kind: InvalidNumber, Format: Annotated, Position: i + 1, Token: m[3]}
		}

		if strings.EqualFold(m[2], "S") {
			lat = -lat
		}
		if strings.EqualFold(m[4], "W") {
			lon = -lon
		}

		p := LatLon{Lat: lat, Lon: lon}
		if !p.Valid() {
			return nil, &ParseError{Kind: OutOfRange, Format: Annotated, Position: i + 1, Token: m[0], Value: p}
		}
		coords = append(coords, p)
	}
	return coords, nil
}

func parsePlain(clean string) ([]LatLon, error) {
	tokens := strings.Split(clean, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	coords := make([]LatLon, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		lat, err := parseNumber(tokens[i])
		if err != nil {
			return nil, &ParseError{Kind: InvalidNumber, Format: Plain, Position: i + 1, Token: tokens[i]}
		}
		if i+1 == len(tokens) {
			return nil, &ParseError{Kind: UnpairedValue, Format: Plain, Position: i + 1, Token: tokens[i]}
		}
		lon, err := parseNumber(tokens[i+1])
		if err != nil {
			return nil, &ParseError{Kind: InvalidNumber, Format: Plain, Position: i + 2, Token: tokens[i+1]}
		}

		p := LatLon{Lat: lat, Lon: lon}
		if !p.Valid() {
			return nil, &ParseError{Kind: OutOfRange, Format: Plain, Position: i + 1, Token: tokens[i] + ", " + tokens[i+1], Value: p}
		}
		coords = append(coords, p)
	}
	return coords, nil
}

// parseNumber only accepts decimal literals, strconv alone would let NaN, Inf
// and hex floats through.
func parseNumber(s string) (float64, error) {
	if !numberPattern.MatchString(s) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, 64)
}
