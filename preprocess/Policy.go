package preprocess

import (
	"github.com/samuelfneumann/gosc2/features"
)

// Output channel counts of the built-in minimap and screen encoders.
// These match the input shapes of trained models and are a contract:
// they are not derived from the feature tables.
const (
	MinimapOutputChannels = 14
	ScreenOutputChannels  = 16
)

// screenV11Channels are the screen channels that exist in the layout
// used by pysc2 v1.1 compatible models
var screenV11Channels = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 10, 12, 14, 15}

// ScreenV11Channels returns the allow-list of screen channels encoded
// by the screen encoder
func ScreenV11Channels() []int {
	return copyInts(screenV11Channels)
}

// Policy determines which channels of a layer stack are encoded and
// how.
//
// Channels lists the channels to consider in output order. If it is
// nil, every channel of the table is considered in table order.
// Channels in Skip are dropped from the output. Channels in Normalize
// are normalized by their scale as if they were scalar features, even
// when declared categorical. OutputChannels is the number of channels
// the policy must produce.
type Policy struct {
	Channels       []int
	Skip           []int
	Normalize      []int
	OutputChannels int
}

// MinimapPolicy returns the selection policy of the minimap encoder
func MinimapPolicy() Policy {
	return Policy{
		Skip:           []int{features.MinimapHeightMap, features.MinimapCreep},
		Normalize:      []int{features.MinimapPlayerID},
		OutputChannels: MinimapOutputChannels,
	}
}

// ScreenPolicy returns the selection policy of the screen encoder
func ScreenPolicy() Policy {
	return Policy{
		Channels: ScreenV11Channels(),
		Skip: []int{
			features.ScreenHeightMap,
			features.ScreenCreep,
			features.ScreenPower,
			features.ScreenUnitEnergy,
			features.ScreenUnitEnergyRatio,
			features.ScreenUnitShields,
			features.ScreenUnitShieldsRatio,
			features.ScreenEffects,
		},
		Normalize:      []int{features.ScreenPlayerID, features.ScreenUnitType},
		OutputChannels: ScreenOutputChannels,
	}
}

// MinimapChannels returns the number of channels produced by the
// minimap encoder
func MinimapChannels() int {
	return MinimapOutputChannels
}

// ScreenChannels returns the number of channels produced by the
// screen encoder
func ScreenChannels() int {
	return ScreenOutputChannels
}

// TableChannels returns the number of channels that encoding every
// channel of a table would produce, ignoring any channel selection:
// one channel per scalar or normalized feature and Scale channels per
// categorical feature. It is a diagnostic and differs from the
// encoder output counts.
func TableChannels(table features.Table, normalize []int) int {
	norm := set(normalize)
	c := 0
	for i := 0; i < table.Len(); i++ {
		f := table.At(i)
		if norm[i] || f.Type == features.Scalar {
			c++
		} else {
			c += f.Scale
		}
	}
	return c
}

func set(ints []int) map[int]bool {
	s := make(map[int]bool, len(ints))
	for _, i := range ints {
		s[i] = true
	}
	return s
}

func copyInts(ints []int) []int {
	if ints == nil {
		return nil
	}
	c := make([]int, len(ints))
	copy(c, ints)
	return c
}
