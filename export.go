package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var ErrNothingToExport = errors.New("nothing to export")

var (
	fieldGreen   = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	losRed       = color.RGBA{R: 0xff, A: 0xff}
	routeColor   = color.White
	offenseColor = color.White
	defenseColor = color.RGBA{R: 0xff, G: 0xd6, A: 0xff}
)

// ExportPNG draws the play onto a field-sized image.
func ExportPNG(filename string, field Field, rules Rules, entities Entities) error {
	if len(entities.Players) == 0 && len(entities.Routes) == 0 {
		return ErrNothingToExport
	}

	width := int(math.Ceil(field.Width))
	height := int(math.Ceil(field.Height))
	dc := gg.NewContext(width, height)
	dc.SetColor(fieldGreen)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}

	drawYardLines(dc, field)

	los := field.Height * rules.LOSFraction
	dc.SetColor(losRed)
	dc.SetLineWidth(1.5)
	dc.DrawLine(0, los, field.Width, los)
	dc.Stroke()

	for _, route := range entities.Routes {
		drawRoutePNG(dc, route)
	}

	for _, player := range entities.Players {
		drawPlayerPNG(dc, ttfFont, player)
	}

	return dc.SavePNG(filename)
}

// drawYardLines marks every 5 yards of a 100 yard field.
func drawYardLines(dc *gg.Context, field Field) {
	step := field.Width / 100
	dc.SetRGBA(1, 1, 1, 0.5)
	for yard := 0; yard <= 100; yard += 5 {
		x := float64(yard) * step
		if yard%10 == 0 {
			dc.SetLineWidth(2)
		} else {
			dc.SetLineWidth(1)
		}
		dc.DrawLine(x, 0, x, field.Height)
		dc.Stroke()
	}
}

func drawRoutePNG(dc *gg.Context, route Route) {
	points := CalculateRoutePoints(route.Points)
	if len(points) < 2 {
		return
	}
	dc.SetColor(routeColor)
	dc.SetLineWidth(2)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.Stroke()

	last := points[len(points)-1]
	prev := points[len(points)-2]
	angle := math.Atan2(last.Y-prev.Y, last.X-prev.X)

	switch route.End {
	case RouteEndCircle:
		dc.DrawCircle(last.X, last.Y, 4)
		dc.Stroke()
	case RouteEndArrow:
		const size = 10.0
		dc.MoveTo(last.X, last.Y)
		dc.LineTo(last.X-size*math.Cos(angle-math.Pi/6), last.Y-size*math.Sin(angle-math.Pi/6))
		dc.MoveTo(last.X, last.Y)
		dc.LineTo(last.X-size*math.Cos(angle+math.Pi/6), last.Y-size*math.Sin(angle+math.Pi/6))
		dc.Stroke()
	case RouteEndBlock:
		const half = 8.0
		perp := angle + math.Pi/2
		dc.DrawLine(last.X-half*math.Cos(perp), last.Y-half*math.Sin(perp),
			last.X+half*math.Cos(perp), last.Y+half*math.Sin(perp))
		dc.Stroke()
	}
}

func drawPlayerPNG(dc *gg.Context, ttfFont *truetype.Font, player Player) {
	dc.DrawCircle(player.X, player.Y, player.Radius)
	switch player.Type {
	case PlayerDefense:
		dc.SetColor(defenseColor)
		dc.Fill()
	default:
		dc.SetColor(offenseColor)
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	if player.Position == nil {
		return
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    math.Max(6, player.Radius),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	dc.SetColor(offenseColor)
	dc.DrawStringAnchored(strconv.Itoa(*player.Position+1), player.X, player.Y, 0.5, 0.4)
}

// ExportJSON encodes the play the way the store keeps it.
func ExportJSON(entities Entities) ([]byte, error) {
	if entities.Players == nil {
		entities.Players = []Player{}
	}
	if entities.Routes == nil {
		entities.Routes = []Route{}
	}
	return json.MarshalIndent(entities, "", "  ")
}

// exportVisualTXT writes the terminal rendering of the field to a file.
func exportVisualTXT(filename string, view View, field Field, width, height int) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if width < 1 {
		width = 80
	}
	if height < 1 {
		height = 24
	}

	for _, line := range renderField(view, field, width, height, -1, -1) {
		fmt.Fprintln(file, line)
	}
	return nil
}
