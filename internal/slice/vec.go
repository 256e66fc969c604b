package slice

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/dotpro-mcp/internal/geo"
)

// LineEnding terminates every overlay line. The viewer comes from the same
// platform as the .pro format and expects CRLF.
const LineEnding = "\r\n"

// FormatLine renders one overlay line for a point at c (converted to degrees).
//
// The numbers are first written the way a decimal-comma locale writes them,
// "lon: lat", and then every comma becomes a period and the colon becomes a
// comma. The viewer only accepts the result of that rewrite, so the output is
// always "lon, lat" with period decimals.
func FormatLine(c geo.Coordinate) string {
	c.ToDegrees()

	coords := commaDecimal(c.Longitude) + ": " + commaDecimal(c.Latitude)
	coords = strings.ReplaceAll(coords, ",", ".")
	coords = strings.ReplaceAll(coords, ":", ",")

	return fmt.Sprintf("TYPE = POINT COLOR = 10 GEO = (%s) WIDTH = 3 IS_WIDTH_ADAPTIVE = FALSE", coords)
}

// commaDecimal formats v with the shortest representation that round-trips,
// switching to exponent form below 1e-4 and from 1e15 up, with a decimal comma.
func commaDecimal(v float64) string {
	var s string
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e15) {
		s = strconv.FormatFloat(v, 'E', -1, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Replace(s, ".", ",", 1)
}

// Export writes one overlay line per point to w. An empty slice writes nothing.
func Export(points []Point, w io.Writer) error {
	if len(points) == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := bw.WriteString(FormatLine(p.Coordinate) + LineEnding); err != nil {
			return fmt.Errorf("write overlay point %d: %w", p.Index, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write overlay: %w", err)
	}
	return nil
}

// ExportFile writes points to a .vec file at path, replacing any existing
// file. An empty slice is a no-op: no file is created or truncated.
func ExportFile(points []Point, path string) (err error) {
	if len(points) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create overlay file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close overlay file: %w", cerr)
		}
	}()

	return Export(points, f)
}
