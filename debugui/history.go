package debugui

// frameHistory is a fixed ring of frame times in milliseconds, laid out for
// imgui.PlotLinesFloatPtr.
type frameHistory struct {
	samples []float32
	index   int
	filled  int
}

func newFrameHistory(size int) *frameHistory {
	if size < 1 {
		size = 1
	}
	return &frameHistory{samples: make([]float32, size)}
}

func (h *frameHistory) push(ms float32) {
	h.samples[h.index] = ms
	h.index = (h.index + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// average ignores slots that have not been written yet.
func (h *frameHistory) average() float32 {
	if h.filled == 0 {
		return 0
	}

	var sum float32
	for _, ms := range h.samples {
		sum += ms
	}
	return sum / float32(h.filled)
}

func (h *frameHistory) fps() float32 {
	avg := h.average()
	if avg <= 0 {
		return 0
	}
	return 1000 / avg
}
