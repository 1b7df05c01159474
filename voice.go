package gendy

// A Voice renders consecutive blocks of a mono stream.
type Voice interface {
	RenderBlock(out Audio) int
}

// MultiVoice mixes several voices, each scaled by Gain.
type MultiVoice struct {
	Params Params
	Gain   float64
	voices []Voice
	buf    Audio
}

// Add initializes v with m's parameters and adds it to the mix.
func (m *MultiVoice) Add(v Voice) {
	Init(v, m.Params)
	m.voices = append(m.voices, v)
}

func (m *MultiVoice) Len() int { return len(m.voices) }

// RenderBlock sums a block from every voice into out.  The scratch buffer
// grows on the first call with a larger block and is reused after that.
func (m *MultiVoice) RenderBlock(out Audio) int {
	if cap(m.buf) < len(out) {
		m.buf = make(Audio, len(out))
	}
	buf := m.buf[:len(out)]
	out.Zero()
	for _, v := range m.voices {
		v.RenderBlock(buf)
		out.Add(out, buf)
	}
	out.MulX(out, m.Gain)
	return len(out)
}
