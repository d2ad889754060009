package behaviour

// GazeResponder is implemented by components that react to the gaze
// reticle. The gaze pointer calls OnGazeEnter when the object becomes the
// look target, OnGazeExit when it stops being the target, and OnGazeTrigger
// when the trigger is used in between.
type GazeResponder interface {
	OnGazeEnter()
	OnGazeExit()
	OnGazeTrigger()
}

// GazeResponders returns the enabled gaze responders on obj.
func GazeResponders(obj *GameObject) []GazeResponder {
	var result []GazeResponder
	for _, comp := range obj.Components {
		if !comp.GetEnabled() {
			continue
		}
		if responder, ok := unwrap(comp).(GazeResponder); ok {
			result = append(result, responder)
		}
	}
	return result
}
