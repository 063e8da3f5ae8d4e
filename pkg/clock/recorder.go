package clock

import "sync"

// Recorder is a Context that remembers every AddClock call in order. It is
// useful in tests and for dry runs where no place-and-route tool is present.
type Recorder struct {
	mu    sync.Mutex
	calls []Domain
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// AddClock implements Context.
func (r *Recorder) AddClock(name string, frequencyMHz int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Domain{Name: name, FrequencyMHz: frequencyMHz})
}

// Calls returns a copy of the recorded registrations.
func (r *Recorder) Calls() []Domain {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Domain, len(r.calls))
	copy(out, r.calls)
	return out
}

// Reset discards recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
