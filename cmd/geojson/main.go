// The geojson tool applies the standing collection operations to files:
// filter-fir removes Flight Information Regions, keep-fis retains only
// FIS sectors, merge concatenates two collections.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/gabriel-briffe/openaip-airspace/internal/geo"
	"github.com/gabriel-briffe/openaip-airspace/internal/openair"
)

type filterFirCmd struct {
	Args struct {
		In  string `positional-arg-name:"in" required:"true" description:"Input GeoJSON file"`
		Out string `positional-arg-name:"out" required:"true" description:"Output GeoJSON file"`
	} `positional-args:"true"`
}

func (c *filterFirCmd) Execute([]string) error {
	fc, err := loadCollection(c.Args.In)
	if err != nil {
		return err
	}
	out := geo.FilterOut(fc, openair.ClassFIR)
	fmt.Fprintf(os.Stderr, "removed %d FIR features, kept %d\n",
		len(fc.Features)-len(out.Features), len(out.Features))
	return saveCollection(c.Args.Out, out)
}

type keepFisCmd struct {
	Args struct {
		In  string `positional-arg-name:"in" required:"true" description:"Input GeoJSON file"`
		Out string `positional-arg-name:"out" required:"true" description:"Output GeoJSON file"`
	} `positional-args:"true"`
}

func (c *keepFisCmd) Execute([]string) error {
	fc, err := loadCollection(c.Args.In)
	if err != nil {
		return err
	}
	out := geo.KeepOnly(fc, openair.ClassFISSector)
	fmt.Fprintf(os.Stderr, "kept %d FIS_SECTOR features of %d\n",
		len(out.Features), len(fc.Features))
	return saveCollection(c.Args.Out, out)
}

type mergeCmd struct {
	Args struct {
		A   string `positional-arg-name:"a" required:"true" description:"Primary GeoJSON file"`
		B   string `positional-arg-name:"b" required:"true" description:"Secondary GeoJSON file"`
		Out string `positional-arg-name:"out" required:"true" description:"Output GeoJSON file"`
	} `positional-args:"true"`
}

func (c *mergeCmd) Execute([]string) error {
	a, err := loadCollection(c.Args.A)
	if err != nil {
		return err
	}
	b, err := loadCollection(c.Args.B)
	if err != nil {
		return err
	}
	out, err := geo.Merge(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "merged %d + %d = %d features\n",
		len(a.Features), len(b.Features), len(out.Features))
	return saveCollection(c.Args.Out, out)
}

func loadCollection(path string) (geo.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return geo.FeatureCollection{}, err
	}
	var fc geo.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return geo.FeatureCollection{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return fc, nil
}

func saveCollection(path string, fc geo.FeatureCollection) error {
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func main() {
	parser := flags.NewParser(nil, flags.Default)

	must := func(err error) {
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}

	_, err := parser.AddCommand("filter-fir", "Remove FIR airspace",
		"Remove all FIR-class features from a collection.", &filterFirCmd{})
	must(err)
	_, err = parser.AddCommand("keep-fis", "Keep only FIS sectors",
		"Retain only FIS_SECTOR-class features from a collection.", &keepFisCmd{})
	must(err)
	_, err = parser.AddCommand("merge", "Merge two collections",
		"Concatenate two collections with no deduplication.", &mergeCmd{})
	must(err)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1) // usage already printed by go-flags
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
