package behaviour

// DefaultFixedInterval is the number of frames between FixedUpdate passes.
const DefaultFixedInterval = 2

// Scheduler drives one ComponentManager through the per-frame phases:
// FixedUpdate every FixedInterval frames, then Update, then LateUpdate.
type Scheduler struct {
	Manager       *ComponentManager
	FixedInterval int

	frame int
}

func NewScheduler(manager *ComponentManager) *Scheduler {
	return &Scheduler{
		Manager:       manager,
		FixedInterval: DefaultFixedInterval,
	}
}

// Tick runs a single frame.
func (s *Scheduler) Tick() {
	s.Manager.StartAll()

	if s.FixedInterval > 0 && s.frame >= s.FixedInterval {
		s.Manager.FixedUpdateAll()
		s.frame = 0
	}
	s.Manager.UpdateAll()
	s.Manager.LateUpdateAll()
	s.frame++
}

// Frame returns the frames counted since the last fixed update.
func (s *Scheduler) Frame() int {
	return s.frame
}
