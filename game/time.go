package game

const usPerSecond = 1_000_000

// GameTime converts a monotonic counter into whole fixed-length ticks and
// carries the remainder to the next update.
type GameTime struct {
	previous   uint64
	partial    uint64
	tickLength uint64
	// TickSeconds is the duration of one tick in seconds.
	TickSeconds float32
}

// NewGameTime starts counting at initial. frequency is the counter rate in
// Hz, tickLengthUS the tick length in microseconds.
func NewGameTime(frequency, tickLengthUS, initial uint64) *GameTime {
	tickLength := frequency * tickLengthUS / usPerSecond
	if tickLength == 0 {
		tickLength = 1
	}
	return &GameTime{
		previous:    initial,
		tickLength:  tickLength,
		TickSeconds: float32(tickLengthUS) / usPerSecond,
	}
}

// Update returns the number of ticks elapsed since the previous update.
func (t *GameTime) Update(now uint64) uint64 {
	var passed uint64
	if now > t.previous {
		passed = now - t.previous
	}
	passed += t.partial
	ticks := passed / t.tickLength
	t.partial = passed % t.tickLength
	t.previous = now
	return ticks
}
