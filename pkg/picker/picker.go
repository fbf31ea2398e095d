// Package picker holds the color function of the ring.
// Every pixel is colored depending on its angular distance to three anchors
// (R, G and B) placed 120° apart on the circle.
package picker

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gucio321/ringpick/pkg/vec"
)

// anchorStep is the (clockwise) angle between two neighbour anchors.
const anchorStep = -120

// Anchors are positions of the R, G and B points relative to the circle center.
type Anchors struct {
	points [numChannels]vec.Point[float64]
}

// NewAnchors places R on the top of a circle of the given radius, rotated by
// rotation degrees (counterclockwise), and G, B 120° and 240° clockwise from it.
func NewAnchors(radius int, rotation float64) Anchors {
	var a Anchors
	a.points[ChannelRed] = vec.Rotate(vec.Pt(0, float64(radius)), rotation)
	for c := 1; c < numChannels; c++ {
		a.points[c] = vec.Rotate(a.points[c-1], anchorStep)
	}

	return a
}

// Point returns position of the anchor for channel c.
func (a Anchors) Point(c Channel) vec.Point[float64] {
	return a.points[c]
}

// Distances returns angular distances (in degrees) from p to R, G and B.
func (a Anchors) Distances(p vec.Point[float64]) [numChannels]float64 {
	var result [numChannels]float64
	for _, c := range Channels {
		result[c] = vec.Angle(p, a.Point(c))
	}

	return result
}

// Color calculates color of a pixel whose center is at p (relative to the circle center).
// The nearest anchor's channel is saturated, the farthest one is off and
// the middle one is scaled by 2*min/(min+med).
func (a Anchors) Color(p vec.Point[float64]) gg.RGBA {
	angles := a.Distances(p)

	angleMin, angleMax := math.Inf(1), math.Inf(-1)
	for _, angle := range angles {
		angleMin = math.Min(angleMin, angle)
		angleMax = math.Max(angleMax, angle)
	}

	// if there is a tie, there is no "middle" one
	angleMed := 0.0
	for _, angle := range angles {
		if angle != angleMin && angle != angleMax {
			angleMed = angle
		}
	}

	var channels [numChannels]float64
	for c, angle := range angles {
		switch angle {
		case angleMin:
			channels[c] = 1
		case angleMax:
			channels[c] = 0
		default:
			channels[c] = 2 * angleMin / (angleMin + angleMed)
		}
	}

	return gg.RGBA{
		R: channels[ChannelRed],
		G: channels[ChannelGreen],
		B: channels[ChannelBlue],
		A: 1,
	}
}
