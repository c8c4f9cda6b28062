package model

// Performance is the ordered event sequence the engine transforms. Order is
// stream order, not necessarily time order; no operation reorders retained
// events. A Performance is treated as an immutable value: operations read it
// and build a brand-new sequence for their result.
type Performance []Event
