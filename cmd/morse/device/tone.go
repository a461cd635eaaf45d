package device

const (
	DefaultToneFrequency = 700 // Hz - standard morse tone
	DefaultToneVolume    = 0.5
)

// ToneConfig describes the generated beep.
type ToneConfig struct {
	Frequency float64
	Volume    float64
}

func (c ToneConfig) withDefaults() ToneConfig {
	if c.Frequency <= 0 {
		c.Frequency = DefaultToneFrequency
	}
	if c.Volume <= 0 || c.Volume > 1 {
		c.Volume = DefaultToneVolume
	}
	return c
}
