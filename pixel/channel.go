package pixel

// Channel is one scalar component of a packed pixel.
type Channel uint8

// Channel tags.
const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelAlpha
	ChannelGray
	ChannelCyan
	ChannelMagenta
	ChannelYellow
	ChannelKey // black
	ChannelHue
	ChannelSaturation
	ChannelLightness

	channelCount
)

// Short aliases used to keep the format table readable.
const (
	chR    = ChannelRed
	chG    = ChannelGreen
	chB    = ChannelBlue
	chA    = ChannelAlpha
	chGray = ChannelGray
	chC    = ChannelCyan
	chM    = ChannelMagenta
	chY    = ChannelYellow
	chK    = ChannelKey
	chH    = ChannelHue
	chS    = ChannelSaturation
	chL    = ChannelLightness
)

var channelNames = [channelCount]string{
	ChannelRed:        "R",
	ChannelGreen:      "G",
	ChannelBlue:       "B",
	ChannelAlpha:      "A",
	ChannelGray:       "Gray",
	ChannelCyan:       "C",
	ChannelMagenta:    "M",
	ChannelYellow:     "Y",
	ChannelKey:        "K",
	ChannelHue:        "H",
	ChannelSaturation: "S",
	ChannelLightness:  "L",
}

// String returns the letter used for the channel in format names.
func (c Channel) String() string {
	if c >= channelCount {
		return "?"
	}
	return channelNames[c]
}
