package parser

import "git.lost.host/meutraa/eotg/internal/chart"

type Parser interface {
	Parse(file string) (*chart.Definition, error)
	ParseBytes(data []byte) (*chart.Definition, error)
}
