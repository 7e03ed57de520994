//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

const Enabled = true

// DefaultCapacity is the ring size used when Init is given capacity <= 0.
const DefaultCapacity = 1 << 20

// Init allocates the event ring. It must be called before the first Start;
// scopes started earlier are dropped. Calling it again discards the history.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	ring.init(capacity)
}

// Start opens a scope and returns the func that closes it.
//
//	defer profiler.Start("Layer2D.OnRender")()
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	begin := time.Now().UnixNano()
	ring.push(event{at: begin, frame: id, open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < begin {
			end = begin
		}
		ring.push(event{at: end, frame: id})
	}
}

// Dump writes the recorded scopes to path as a speedscope evented profile.
// The file is written to a temporary sibling first and renamed into place.
func Dump(path string) error {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return ErrNoEvents
	}
	doc, err := buildSpeedscope(evs, frameNames())
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: dump: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("profiler: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("profiler: dump: %w", err)
	}
	return os.Rename(tmp, path)
}

// ---------- event ring ----------

type event struct {
	at    int64 // unix nanoseconds
	frame int
	open  bool
}

// eventRing keeps the most recent cap events in write order.
type eventRing struct {
	ready atomic.Bool
	mu    sync.Mutex
	cap   uint64
	write uint64
	evs   []event
}

var ring eventRing

func (r *eventRing) init(capacity int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cap = uint64(capacity)
	r.evs = make([]event, r.cap)
	r.write = 0
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	r.mu.Lock()
	r.evs[r.write%r.cap] = e
	r.write++
	r.mu.Unlock()
}

func (r *eventRing) snapshot() []event {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.write
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

// ---------- scope names ----------

var (
	namesMu sync.Mutex
	names   []string
	nameIDs = map[string]int{}
)

func intern(name string) int {
	namesMu.Lock()
	defer namesMu.Unlock()
	if id, ok := nameIDs[name]; ok {
		return id
	}
	id := len(names)
	nameIDs[name] = id
	names = append(names, name)
	return id
}

func frameNames() []string {
	namesMu.Lock()
	defer namesMu.Unlock()
	return append([]string(nil), names...)
}

// ---------- speedscope ----------

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // microseconds since the first event
	Frame int    `json:"frame"`
}

// buildSpeedscope balances the event stream: closes that do not match the
// innermost open scope are dropped, and scopes still open at the end are
// closed at the last timestamp. Times never go backwards.
func buildSpeedscope(evs []event, frames []string) (*ssFile, error) {
	base := evs[0].at
	out := make([]ssEvent, 0, len(evs)+16)
	stack := make([]int, 0, 64)
	last := int64(0)

	for _, e := range evs {
		at := (e.at - base) / 1000
		if at < last {
			at = last
		}
		if e.open {
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.frame})
			stack = append(stack, e.frame)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.frame})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	if len(out) == 0 {
		return nil, ErrNoEvents
	}

	fs := make([]ssFrame, len(frames))
	for i, n := range frames {
		fs[i] = ssFrame{Name: n}
	}
	return &ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: fs},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "echlib frames",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "echlib-profiler",
		Name:     "echlib capture",
	}, nil
}
