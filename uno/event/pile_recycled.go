package event

type PileRecycledPayload struct {
	Amount int
}

type PileRecycledListener interface {
	OnPileRecycled(PileRecycledPayload)
}

type pileRecycledEmitter struct {
	listeners []PileRecycledListener
}

func (e *pileRecycledEmitter) AddListener(listener PileRecycledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *pileRecycledEmitter) Emit(payload PileRecycledPayload) {
	for _, listener := range e.listeners {
		listener.OnPileRecycled(payload)
	}
}
