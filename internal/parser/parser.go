package parser

import "time"

type Parser interface {
	Parse(file string) ([]time.Duration, error)
}
