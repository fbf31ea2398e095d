package picker

//go:generate stringer -type=Channel -linecomment

// Channel is a color channel driven by one of the anchor points.
type Channel int

const (
	// ChannelRed - anchor on the top of the ring (before rotation)
	ChannelRed Channel = iota // R
	// ChannelGreen - anchor 120° clockwise from red
	ChannelGreen // G
	// ChannelBlue - anchor 240° clockwise from red
	ChannelBlue // B

	numChannels = 3
)

// Channels lists all the channels in the anchor order.
var Channels = [numChannels]Channel{ChannelRed, ChannelGreen, ChannelBlue}
