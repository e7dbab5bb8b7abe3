// Package render draws a biscuit placement as an image or a data file.
//
// # Overview
//
// Every renderer draws the same picture: the pan outline, offset by a
// padding on all sides, and one small marker per biscuit centre. Formats:
//
//   - SVG: vector image, one outline path plus one circle per biscuit
//   - PNG: raster image drawn with gg
//   - PDF: single page drawn with fpdf, sized to the pan
//   - DXF: CAD drawing with a "pan" and a "biscuits" layer, for cutters
//   - JSON: pan dimensions and coordinates for external tools
//
// Basic usage:
//
//	svg := render.RenderSVG(width, length, placement, render.WithPadding(10))
//	data, err := render.Render(render.FormatPDF, width, length, placement)
//
// # File Names
//
// [Filename] builds the conventional output name, for example
// "5_biscuits_100X200_pan.svg".
package render
