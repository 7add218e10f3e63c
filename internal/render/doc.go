// Package render produces the raster assets the server embeds into slides:
// gradient background images, chart PNGs, and enhanced copies of user
// images.
//
// Everything here is pure pixel work. The wrapped presentation library only
// ever sees the finished bytes, so this package has no knowledge of slides
// or documents.
package render
