package store

// Listener is called synchronously after every dispatch with the state
// before and after the transition.
type Listener func(prev, next State, t Transition)

// Recorder observes applied transitions, typically to journal them.
type Recorder interface {
	Record(t Transition, next State)
}

// Option configures a Store.
type Option func(*Store)

// WithInitial overrides the starting state.
func WithInitial(s State) Option {
	return func(st *Store) {
		st.state = s
	}
}

// WithRecorder attaches a Recorder that sees every transition.
func WithRecorder(r Recorder) Option {
	return func(st *Store) {
		st.recorder = r
	}
}

// Store owns the application state. Dispatch is the only way to change it.
//
// A Store is not safe for concurrent use. All dispatches must come from one
// goroutine, which in the terminal client is the Bubble Tea update loop.
type Store struct {
	state     State
	listeners []Listener
	recorder  Recorder
	seq       uint64
}

// New creates a Store holding Initial() unless overridden by opts.
func New(opts ...Option) *Store {
	s := &Store{state: Initial()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	return s.state
}

// Seq returns the number of transitions dispatched so far.
func (s *Store) Seq() uint64 {
	return s.seq
}

// Subscribe registers l to run after every dispatch. The returned function
// removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.listeners = append(s.listeners, l)
	idx := len(s.listeners) - 1
	return func() {
		if idx < len(s.listeners) {
			s.listeners[idx] = nil
		}
	}
}

// Dispatch reduces t into a new state, stores it and notifies the recorder
// and every listener before returning.
func (s *Store) Dispatch(t Transition) {
	prev := s.state
	s.state = Reduce(prev, t)
	s.seq++
	if s.recorder != nil {
		s.recorder.Record(t, s.state)
	}
	for _, l := range s.listeners {
		if l != nil {
			l(prev, s.state, t)
		}
	}
}
