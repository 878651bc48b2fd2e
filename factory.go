package reactive

// EventDef is a static event binding shared by a component kind's
// configuration. It is copied per instance, so per-instance mutation never
// affects siblings or the shared configuration.
type EventDef struct {
	Type     string
	Listener EventListener
	Selector string
}

// Config defines a reusable component kind.
type Config struct {
	// Template projects state and props to a render tree.
	Template Template

	// InitialState fixes the state schema; it is deep-copied per instance.
	InitialState map[string]any

	// Definitions customizes new instances before state and template
	// wiring. A func(*Component) runs in the instance's context; a
	// map[string]any has its entries copied onto the instance's Extra map.
	Definitions any

	// Events is the static listener list applied to every instance.
	Events []EventDef
}

// Kind is a constructible component kind produced by Define. Instances are
// fully independent: no mutable configuration is shared between them.
type Kind struct {
	cfg Config
}

// Define builds a component kind from a configuration object. A kind
// cannot render without a template, so a nil one panics here rather than
// failing on first use.
func Define(cfg Config) *Kind {
	if cfg.Template == nil {
		panic(ErrNilTemplate)
	}
	return &Kind{cfg: cfg}
}

// New constructs an independent instance of the kind. Definitions run before
// state and template wiring; the static event list is copied per instance.
func (k *Kind) New() *Component {
	c := &Component{Extra: make(map[string]any)}

	switch d := k.cfg.Definitions.(type) {
	case nil:
	case func(*Component):
		d(c)
	case map[string]any:
		for key, v := range d {
			c.Extra[key] = deepCopy(v)
		}
	}

	c.init(k.cfg.Template, k.cfg.InitialState)

	for _, ev := range k.cfg.Events {
		// A def without a listener has nothing to dispatch to.
		if ev.Listener == nil {
			continue
		}
		c.events = append(c.events, &Binding{
			eventType: ev.Type,
			listener:  ev.Listener,
			selector:  ev.Selector,
		})
	}

	return c
}
