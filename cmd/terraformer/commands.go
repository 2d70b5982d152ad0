package main

import (
	"context"
	"fmt"
	"os"

	"github.com/woozymasta/terraformer/internal/geo"
	"github.com/woozymasta/terraformer/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type inputOptions struct {
	Input string `short:"i" long:"in" description:"Input file path or http(s) URL. Reads from stdin if empty"`
}

func (o inputOptions) read() (geo.Object, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	return processor.Read(ctx, processor.NewClient(opts.Timeout), o.Input)
}

type bboxCommand struct {
	inputOptions

	Polygon bool `long:"polygon" description:"Print the box as a GeoJSON Polygon feature instead of an array"`
}

// Execute prints [minX, minY, maxX, maxY], or null for a document without positions.
func (c *bboxCommand) Execute([]string) error {
	o, err := c.read()
	if err != nil {
		return err
	}

	box := o.BBox()
	if !box.Valid() {
		log.Warn().Str("type", string(o.Type())).Msg("Document holds no position")
		return processor.Write(os.Stdout, opts.Output, nil, env.out)
	}

	if c.Polygon {
		extent := &geo.Feature{
			Geometry:   box.Polygon(),
			Properties: map[string]any{"center": box.Center()},
			CRS:        geo.CRSOf(o),
		}
		return processor.Write(os.Stdout, opts.Output, extent, env.out)
	}

	return processor.Write(os.Stdout, opts.Output, box.Slice(), env.out)
}

type projectCommand struct {
	inputOptions

	mercator bool
}

func (c *projectCommand) Execute([]string) error {
	o, err := c.read()
	if err != nil {
		return err
	}

	target := "geographic"
	project := geo.ToGeographicInPlace
	if c.mercator {
		target = "mercator"
		project = geo.ToMercatorInPlace
	}

	if crs := geo.CRSOf(o); c.mercator && crs.IsMercator() {
		log.Warn().Msg("Document is already tagged as Web Mercator")
	} else if !c.mercator && crs == nil {
		log.Warn().Msg("Document has no CRS tag, it may already be geographic")
	}

	if err := project(o); err != nil {
		return err
	}

	log.Info().
		Str("type", string(o.Type())).
		Str("target", target).
		Msg("Document projected")

	return processor.Write(os.Stdout, opts.Output, o, env.out)
}

type circleCommand struct {
	Longitude float64 `long:"lng"    description:"Center longitude in degrees" required:"true"`
	Latitude  float64 `long:"lat"    description:"Center latitude in degrees" required:"true"`
	Radius    float64 `long:"radius" short:"r" description:"Radius in meters" required:"true"`
	Steps     int     `long:"steps"  short:"s" description:"Number of vertices (defaults to circle_steps from config)"`
}

func (c *circleCommand) Execute([]string) error {
	steps := c.Steps
	if steps == 0 {
		steps = env.cfg.CircleSteps
	}

	circle, err := geo.NewCircle(geo.Position{c.Longitude, c.Latitude}, c.Radius, steps)
	if err != nil {
		return err
	}

	log.Info().
		Float64("lng", c.Longitude).
		Float64("lat", c.Latitude).
		Float64("radius", c.Radius).
		Int("steps", steps).
		Msg("Circle generated")

	return processor.Write(os.Stdout, opts.Output, circle, env.out)
}

func addCommands(parser *flags.Parser) {
	commands := []struct {
		name, short, long string
		data              any
	}{
		{"bbox", "Print the bounding box", "Print the [minX, minY, maxX, maxY] bounding box of a GeoJSON document.", &bboxCommand{}},
		{"mercator", "Project to Web Mercator", "Project a geographic GeoJSON document to Web Mercator (EPSG:3857) and tag its crs.", &projectCommand{mercator: true}},
		{"geographic", "Project to geographic", "Project a Web Mercator GeoJSON document to longitude/latitude (EPSG:4326) and drop its crs.", &projectCommand{}},
		{"circle", "Generate a circle", "Generate a polygon feature approximating a circle around a geographic center.", &circleCommand{}},
	}

	for _, cmd := range commands {
		if _, err := parser.AddCommand(cmd.name, cmd.short, cmd.long, cmd.data); err != nil {
			panic(fmt.Sprintf("register command %s: %v", cmd.name, err))
		}
	}
}
