package parser

import (
	"fmt"
	"io/ioutil"
	"math"
	"strconv"
	"strings"
	"time"
)

type DefaultParser struct{}

// Parse reads a .beats file: one beat timestamp per line, in seconds
// from playback start, sorted ascending. Blank lines and lines starting
// with # are skipped. Equal adjacent timestamps are tolerated, a
// decrease or a negative value is not.
func (p *DefaultParser) Parse(file string) ([]time.Duration, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}

	beats := []time.Duration{}
	prev := time.Duration(-1)
	for i, line := range strings.Split(strings.ReplaceAll(string(data), "\r", ""), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seconds, err := strconv.ParseFloat(line, 64)
		if nil != err {
			return nil, fmt.Errorf("unable to parse beat on line %v: %w", i+1, err)
		}
		if math.IsNaN(seconds) || seconds < 0 {
			return nil, fmt.Errorf("invalid beat timestamp %v on line %v", line, i+1)
		}
		beat := time.Duration(seconds * float64(time.Second))
		if beat < prev {
			return nil, fmt.Errorf("beat timestamps not sorted at line %v", i+1)
		}
		beats = append(beats, beat)
		prev = beat
	}

	return beats, nil
}
