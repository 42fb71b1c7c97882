package ut1

import (
	"bytes"
	"fmt"
	"os"

	"github.com/chrisconley/chronon/internal/infra"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

// document is the TOML layout of a UT1 file:
//
//	[[record]]
//	epoch = "2017-01-01T00:00:00 UTC"
//	delta_tai_ut1 = "36 s 592 ms"
type document struct {
	Records []Record `toml:"record"`
}

// Parse reads UT1 records from TOML.
func Parse(data []byte) (*Provider, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return NewProvider(doc.Records)
}

// Marshal renders p in the layout Parse reads.
func Marshal(p *Provider) ([]byte, error) {
	return toml.Marshal(document{Records: p.records})
}

// Loaded is published after a UT1 file has been read.
type Loaded struct {
	Path    string
	Records int
}

func (Loaded) EventType() infra.EventType { return infra.UT1Loaded }

// LoadFile reads a UT1 TOML file and announces it on bus, which may be nil.
func LoadFile(path string, bus *infra.Bus) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading UT1 file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("records", p.Len()).Msg("loaded UT1 records")
	if bus != nil {
		bus.Publish(Loaded{Path: path, Records: p.Len()})
	}
	return p, nil
}
