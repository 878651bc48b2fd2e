package rdom

// OpKind is the type of mutation applied to the live tree.
type OpKind uint8

const (
	OpSetText     OpKind = 0x01 // Update text content
	OpSetAttr     OpKind = 0x02 // Set/update attribute
	OpRemoveAttr  OpKind = 0x03 // Remove attribute
	OpInsertChild OpKind = 0x04 // Append/insert a child node
	OpRemoveChild OpKind = 0x05 // Remove a child node
	OpReplaceNode OpKind = 0x06 // Replace a node entirely
	OpSetValue    OpKind = 0x07 // Sync the live value property
)

// String returns the string representation of the OpKind.
func (k OpKind) String() string {
	switch k {
	case OpSetText:
		return "SetText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpInsertChild:
		return "InsertChild"
	case OpRemoveChild:
		return "RemoveChild"
	case OpReplaceNode:
		return "ReplaceNode"
	case OpSetValue:
		return "SetValue"
	default:
		return "Unknown"
	}
}

// Op describes a single mutation the reconciler applied to the live tree.
// Path addresses the mutated node by child indices from the reconcile root;
// for child operations Path addresses the parent and Index the slot.
type Op struct {
	Kind  OpKind
	Path  []int
	Name  string // Attribute name for SetAttr/RemoveAttr
	Value string // New value for SetText/SetAttr/SetValue
	Index int    // Child slot for InsertChild/RemoveChild
	Node  *Node  // Inserted/replacement node
}

// Recorder observes mutations as the reconciler applies them. Implementations
// must not mutate the observed tree.
type Recorder interface {
	Record(op Op)
}

// OpCounter is a Recorder that tallies applied mutations. The zero value is
// ready to use.
type OpCounter struct {
	Total  int
	ByKind map[OpKind]int
}

// Record implements Recorder.
func (c *OpCounter) Record(op Op) {
	c.Total++
	if c.ByKind == nil {
		c.ByKind = make(map[OpKind]int)
	}
	c.ByKind[op.Kind]++
}

// Reset clears all counts.
func (c *OpCounter) Reset() {
	c.Total = 0
	c.ByKind = nil
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(op Op)

// Record implements Recorder.
func (f RecorderFunc) Record(op Op) { f(op) }
